package models

import "time"

type Goal struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Revision  int64     `json:"revision"`
	CreatedAt time.Time `json:"createdAt"`
}

// Line renders the goal with a checkbox marker.
func (g *Goal) Line() string {
	if g.Completed {
		return "[x] " + g.Text
	}
	return "[ ] " + g.Text
}
