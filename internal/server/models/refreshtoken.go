package models

import "time"

type RefreshToken struct {
	ID        string
	Wallet    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
