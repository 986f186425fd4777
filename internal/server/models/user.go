// Package models defines server-side data models persisted in the database.
package models

import "time"

// MaxEducationLen bounds the user-supplied education field.
const MaxEducationLen = 32

// User is one registered participant, identified by wallet. The wallet is
// immutable after creation. Education may be changed only by the owner.
// PublishedPapers is incremented exactly once per manuscript of this author
// that reaches the Accepted state.
type User struct {
	Wallet          string
	Education       string
	PublishedPapers uint8
	Salt            []byte
	Verifier        []byte
	CreatedAt       time.Time
}
