package models

import "time"

// Goal is a user-defined task with a completion flag.
//
// Revision starts at 1 and is bumped by every successful update; clients may
// send it back to detect concurrent modification.
type Goal struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Revision  int64     `json:"revision"`
	CreatedAt time.Time `json:"createdAt"`
}
