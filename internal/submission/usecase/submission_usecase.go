package usecase

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/domain"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/repository"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/apperror"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/fields"
)

// submissionUsecase implements SubmissionUsecase interface
type submissionUsecase struct {
	repo repository.SubmissionRepository
}

// NewSubmissionUsecase creates a new instance of submissionUsecase
func NewSubmissionUsecase(repo repository.SubmissionRepository) SubmissionUsecase {
	return &submissionUsecase{repo: repo}
}

func (u *submissionUsecase) Submit(ctx context.Context, collection domain.Collection, userID uint, payload map[string]any) (*domain.Receipt, error) {
	if err := fields.Require(payload, collection.RequiredFields); err != nil {
		log.Printf("[Submission] %s rejected for userId %d: %v", collection.Context, userID, err)
		return nil, err
	}

	log.Printf("[Submission] %s request for userId %d, fields: %s", collection.Context, userID, strings.Join(keys(payload), ", "))

	values := make([]any, len(collection.Columns))
	for i, col := range collection.Columns {
		values[i] = columnValue(payload[col])
	}

	id, err := u.repo.Insert(ctx, collection.Table, userID, collection.Columns, values)
	if err != nil {
		return nil, apperror.Persistence("saving "+collection.Context, err)
	}

	log.Printf("[Submission] %s saved with ID %d for userId %d", collection.Context, id, userID)
	return &domain.Receipt{
		Message: collection.SuccessMessage,
		IDKey:   collection.IDKey(),
		ID:      id,
	}, nil
}

func (u *submissionUsecase) SubmitFinancing(ctx context.Context, userID uint, payload map[string]any) (*domain.Receipt, error) {
	if raw, ok := payload["amount"]; ok && !fields.IsBlank(raw) {
		amount, ok := parsePositiveFloat(raw)
		if !ok {
			return nil, apperror.Invalid("amount", "Invalid loan amount")
		}
		payload["amount"] = amount
	}
	if raw, ok := payload["term"]; ok && !fields.IsBlank(raw) {
		term, ok := parsePositiveInt(raw)
		if !ok {
			return nil, apperror.Invalid("term", "Invalid loan term")
		}
		payload["term"] = term
	}
	return u.Submit(ctx, domain.FinancingRequests, userID, payload)
}

func (u *submissionUsecase) ListTestDrives(ctx context.Context, userID uint) ([]domain.TestDriveSummary, error) {
	drives, err := u.repo.ListTestDrives(ctx, userID)
	if err != nil {
		return nil, apperror.Persistence("retrieving test drives", err)
	}
	if drives == nil {
		drives = []domain.TestDriveSummary{}
	}
	log.Printf("[Submission] Found %d test drives for userId %d", len(drives), userID)
	return drives, nil
}

// columnValue stores blank optional values as NULL and trims strings.
func columnValue(v any) any {
	if fields.IsBlank(v) {
		return nil
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case map[string]any, []any:
		b, _ := json.Marshal(val)
		return string(b)
	}
	return v
}

func parsePositiveFloat(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case int:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}

func parsePositiveInt(v any) (int, bool) {
	var n int
	switch val := v.(type) {
	case float64:
		if val != math.Trunc(val) || val > math.MaxInt32 {
			return 0, false
		}
		n = int(val)
	case int:
		n = val
	case json.Number:
		parsed, err := strconv.Atoi(val.String())
		if err != nil {
			return 0, false
		}
		n = parsed
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	return n, n > 0
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
