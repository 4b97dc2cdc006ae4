package services

import "fmt"

// ValidationError rejects an operation before any write because an input or
// invariant check failed (weights not summing to 100, duplicate module in a
// class, malformed selection).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError is fatal for the single operation that referenced a missing
// record.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError marks an operation that cannot proceed because of current
// state (e.g. clearing an exemption backed by verified prior completion).
// Bulk duplicates are not errors at all; they are counted as skips.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// ConsistencyError blocks a computation whose configuration is broken, e.g.
// scoring against category weights that no longer sum to 100.
type ConsistencyError struct {
	Reason string
}

func (e *ConsistencyError) Error() string { return e.Reason }

// BatchResult reports what a bulk operation actually did. Duplicates are
// silent skips, never aborts.
type BatchResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}
