// Package models defines server-side records persisted in the database and
// returned by the REST API.
package models

import "time"

// Vibe is a mood journal entry. Mood is required, Note is optional and
// serialises as null when absent.
type Vibe struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}
