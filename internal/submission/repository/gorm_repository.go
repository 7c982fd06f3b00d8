package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/domain"

	"gorm.io/gorm"
)

// gormSubmissionRepository implements SubmissionRepository using GORM
type gormSubmissionRepository struct {
	db *gorm.DB
}

// NewGormSubmissionRepository creates a new GORM-based SubmissionRepository
func NewGormSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &gormSubmissionRepository{db: db}
}

func (r *gormSubmissionRepository) Insert(ctx context.Context, table string, userID uint, columns []string, values []any) (uint, error) {
	if len(columns) != len(values) {
		return 0, fmt.Errorf("insert into %s: %d columns but %d values", table, len(columns), len(values))
	}

	names := make([]string, 0, len(columns)+2)
	names = append(names, "user_id", "created_at")
	for _, col := range columns {
		names = append(names, r.db.NamingStrategy.ColumnName(table, col))
	}

	args := make([]any, 0, len(values)+2)
	args = append(args, userID, time.Now().UTC())
	args = append(args, values...)

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id", table, strings.Join(names, ", "), placeholders)

	var id uint
	if err := r.db.WithContext(ctx).Raw(query, args...).Row().Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *gormSubmissionRepository) ListTestDrives(ctx context.Context, userID uint) ([]domain.TestDriveSummary, error) {
	drives := make([]domain.TestDriveSummary, 0)
	err := r.db.WithContext(ctx).
		Model(&domain.TestDrive{}).
		Select("id", "car_model", "preferred_date", "preferred_time", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Scan(&drives).Error
	if err != nil {
		return nil, err
	}
	return drives, nil
}
