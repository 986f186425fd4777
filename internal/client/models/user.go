package models

import "fmt"

// User is the client-side view of a registered participant profile.
type User struct {
	Wallet          string
	Education       string
	PublishedPapers uint32
}

func (u *User) String() string {
	return fmt.Sprintf("%s  education=%q  published=%d", u.Wallet, u.Education, u.PublishedPapers)
}
