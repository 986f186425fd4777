package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/peerreview/internal/dbx"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/escrows"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/manuscripts"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Manuscripts(db dbx.DBTX) manuscripts.Repository
	Escrows(db dbx.DBTX) escrows.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
