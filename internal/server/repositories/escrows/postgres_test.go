package escrows

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+escrows\b.*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*false\)\s*$`

	mock.ExpectExec(`^SAVEPOINT\s+escrow_create$`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q).
		WithArgs("esc-1", "m1", "settlement", uint64(50_000_000), uint8(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^RELEASE\s+SAVEPOINT\s+escrow_create$`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	e := &models.Escrow{ID: "esc-1", ManuscriptID: "m1", Authority: "settlement", Balance: 50_000_000}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// A unique violation on the manuscript index means this manuscript already
// has a live escrow; the savepoint is rolled back and the caller must not
// retry with another nonce.
func TestCreate_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^SAVEPOINT\s+escrow_create$`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+escrows\b`).
		WithArgs("esc-1", "m1", "settlement", uint64(50_000_000), uint8(0)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "escrows_manuscript_id_key"})
	mock.ExpectExec(`^ROLLBACK\s+TO\s+SAVEPOINT\s+escrow_create$`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	e := &models.Escrow{ID: "esc-1", ManuscriptID: "m1", Authority: "settlement", Balance: 50_000_000}
	if err := repo.Create(context.Background(), e); !errors.Is(err, common.ErrDuplicateEntry) {
		t.Fatalf("want common.ErrDuplicateEntry, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// A primary-key violation means the derived ID belongs to another
// manuscript; the savepoint keeps the enclosing transaction usable so the
// caller can retry with the next nonce.
func TestCreate_IDCollision(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^SAVEPOINT\s+escrow_create$`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+escrows\b`).
		WithArgs("esc-1", "m1", "settlement", uint64(50_000_000), uint8(0)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "escrows_pkey"})
	mock.ExpectExec(`^ROLLBACK\s+TO\s+SAVEPOINT\s+escrow_create$`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	e := &models.Escrow{ID: "esc-1", ManuscriptID: "m1", Authority: "settlement", Balance: 50_000_000}
	if err := repo.Create(context.Background(), e); !errors.Is(err, ErrIDCollision) {
		t.Fatalf("want ErrIDCollision, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByManuscript_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*manuscript_id,\s*authority,\s*balance,\s*nonce,\s*settled,\s*created_at\s+FROM\s+escrows\s+WHERE\s+manuscript_id\s*=\s*\$1\s*$`).
		WithArgs("m1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "manuscript_id", "authority", "balance", "nonce", "settled", "created_at"}).
			AddRow("esc-1", "m1", "settlement", uint64(50_000_000), uint8(0), false, created))

	e, err := repo.GetByManuscript(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != "esc-1" || e.Balance != currency.Units(50_000_000) || e.Settled {
		t.Fatalf("unexpected escrow: %+v", e)
	}
}

func TestGetByManuscript_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByManuscript(context.Background(), "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestSettle_ReturnsHeldBalance(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^WITH\s+held\s+AS\s*\(.*FOR\s+UPDATE.*\)\s*UPDATE\s+escrows\s+SET\s+settled\s*=\s*true,\s*balance\s*=\s*0.*RETURNING\s+held\.balance\s*$`

	mock.ExpectQuery(q).
		WithArgs("esc-1").
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(uint64(50_000_000)))

	held, err := repo.Settle(context.Background(), "esc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if held != currency.Units(50_000_000) {
		t.Fatalf("unexpected held balance: %v", held)
	}
}

func TestSettle_AlreadySettled(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// the settled = false guard matches zero rows on the second attempt
	mock.ExpectQuery(`(?s)^WITH\s+held\s+AS`).
		WithArgs("esc-1").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.Settle(context.Background(), "esc-1"); !errors.Is(err, common.ErrStateConflict) {
		t.Fatalf("want common.ErrStateConflict, got %v", err)
	}
}
