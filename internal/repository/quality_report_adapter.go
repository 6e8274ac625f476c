package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"homework-grader/internal/domain"
	"homework-grader/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QualityReportDatabaseAdapter implements domain.QualityReportRepository using sqlx.DB
type QualityReportDatabaseAdapter struct {
	db *sqlx.DB
	tx *TransactionManager
}

// NewQualityReportDatabaseAdapter creates a new instance of QualityReportDatabaseAdapter
func NewQualityReportDatabaseAdapter(db *sqlx.DB) domain.QualityReportRepository {
	return &QualityReportDatabaseAdapter{db: db, tx: NewTransactionManager(db)}
}

// SaveReport stores the report row and its duplicate pairs in one transaction
func (a *QualityReportDatabaseAdapter) SaveReport(ctx context.Context, stored *domain.StoredQualityReport) error {
	if stored == nil || stored.Report == nil {
		return fmt.Errorf("cannot save nil quality report")
	}
	row, duplicates, err := toModelQualityReport(stored)
	if err != nil {
		return err
	}
	row.CreatedAt = time.Now()

	return a.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)

		query := `INSERT INTO quality_reports (
			id, threshold, total_exercises, unique_exercises, removed_count,
			average_difficulty, math_formulas, payload, generated_at, created_at
		) VALUES (
			:1, :2, :3, :4, :5, :6, :7, :8, :9, :10
		)`
		if _, err := exec.ExecContext(ctx, query,
			row.ID,
			row.Threshold,
			row.TotalExercises,
			row.UniqueExercises,
			row.RemovedCount,
			row.AverageDifficulty,
			row.MathFormulas,
			row.Payload,
			row.GeneratedAt,
			row.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to save quality report %s: %w", row.ID, err)
		}

		dupQuery := `INSERT INTO quality_report_duplicates (
			report_id, position, original_id, duplicate_id, overall_similarity
		) VALUES (:1, :2, :3, :4, :5)`
		for _, d := range duplicates {
			if _, err := exec.ExecContext(ctx, dupQuery,
				d.ReportID, d.Position, d.OriginalID, d.DuplicateID, d.OverallSimilarity,
			); err != nil {
				return fmt.Errorf("failed to save duplicate pair %s/%s of report %s: %w", d.OriginalID, d.DuplicateID, row.ID, err)
			}
		}
		return nil
	})
}

// GetReportByID implements domain.QualityReportRepository
func (a *QualityReportDatabaseAdapter) GetReportByID(ctx context.Context, id string) (*domain.StoredQualityReport, error) {
	var row models.QualityReport
	query := `SELECT id, threshold, total_exercises, unique_exercises, removed_count,
		average_difficulty, math_formulas, payload, generated_at, created_at
	FROM quality_reports
	WHERE id = :1`

	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quality report by ID %s: %w", id, err)
	}
	return toDomainQualityReport(&row)
}

func toModelQualityReport(stored *domain.StoredQualityReport) (*models.QualityReport, []models.QualityReportDuplicate, error) {
	report := stored.Report
	payload, err := json.Marshal(report)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal quality report %s: %w", stored.ID, err)
	}

	dedup := report.QualityMetrics.Duplicates
	row := &models.QualityReport{
		ID:                stored.ID,
		Threshold:         stored.Threshold,
		TotalExercises:    report.TotalExercises,
		UniqueExercises:   len(dedup.UniqueExercises),
		RemovedCount:      dedup.RemovedCount,
		AverageDifficulty: report.AverageDifficulty,
		MathFormulas:      report.QualityMetrics.MathFormulas,
		Payload:           string(payload),
		GeneratedAt:       report.Timestamp,
	}

	duplicates := make([]models.QualityReportDuplicate, 0, len(dedup.DuplicateReport))
	for i, entry := range dedup.DuplicateReport {
		duplicates = append(duplicates, models.QualityReportDuplicate{
			ReportID:          stored.ID,
			Position:          i + 1,
			OriginalID:        entry.OriginalID.String(),
			DuplicateID:       entry.DuplicateID.String(),
			OverallSimilarity: entry.Similarity.Overall,
		})
	}
	return row, duplicates, nil
}

func toDomainQualityReport(row *models.QualityReport) (*domain.StoredQualityReport, error) {
	var report domain.QualityReport
	if err := json.Unmarshal([]byte(row.Payload), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quality report %s: %w", row.ID, err)
	}
	return &domain.StoredQualityReport{
		ID:        row.ID,
		Threshold: row.Threshold,
		Report:    &report,
	}, nil
}
