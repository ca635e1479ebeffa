package repository

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// validateSettings rejects settings no record set could have been saved with.
func validateSettings(rs *domain.RecordSet) error {
	if rs.RoundingGrain <= 0 {
		return fmt.Errorf("rounding grain %d: %w", rs.RoundingGrain, ErrSchemaMismatch)
	}
	if rs.GoalMinutes < 0 {
		return fmt.Errorf("goal %.1f: %w", rs.GoalMinutes, ErrSchemaMismatch)
	}
	return nil
}
