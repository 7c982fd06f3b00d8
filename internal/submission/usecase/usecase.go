package usecase

import (
	"context"

	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/domain"
)

// SubmissionUsecase defines the interface for submission business logic
type SubmissionUsecase interface {
	// Submit validates payload against the collection and stores one row owned by userID
	Submit(ctx context.Context, collection domain.Collection, userID uint, payload map[string]any) (*domain.Receipt, error)

	// SubmitFinancing checks amount and term, then runs Submit on FinancingRequests
	SubmitFinancing(ctx context.Context, userID uint, payload map[string]any) (*domain.Receipt, error)

	// ListTestDrives returns the user's test drives, newest first, never nil
	ListTestDrives(ctx context.Context, userID uint) ([]domain.TestDriveSummary, error)
}
