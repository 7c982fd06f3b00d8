package repository

import (
	"context"

	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/domain"
)

// SubmissionRepository defines the interface for submission data access
type SubmissionRepository interface {
	// Insert writes one row into table owned by userID. columns are JSON field
	// names, values line up with them. Returns the new row id.
	Insert(ctx context.Context, table string, userID uint, columns []string, values []any) (uint, error)

	// ListTestDrives returns the user's test drives, most recent first
	ListTestDrives(ctx context.Context, userID uint) ([]domain.TestDriveSummary, error)
}
