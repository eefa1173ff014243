// Package models defines the client-side view of vibes and goals as
// returned by the server API.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Vibe is a mood entry. Note is nil when the server stored none.
type Vibe struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// Line renders the vibe for list output.
func (v *Vibe) Line() string {
	var b strings.Builder
	b.WriteString(v.Mood)
	if v.Note != nil && *v.Note != "" {
		fmt.Fprintf(&b, " - %s", *v.Note)
	}
	fmt.Fprintf(&b, " (%s)", v.CreatedAt.Local().Format(time.DateTime))
	return b.String()
}
