package common

// Entity names used in routes, log keys and client-side section errors.
const (
	SectionVibes = "vibes"
	SectionGoals = "goals"
)

// IDQueryParam carries the record identifier for mutation and delete calls.
const IDQueryParam = "id"
