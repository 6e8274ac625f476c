package domain

import "context"

// StoredQualityReport is a quality report persisted under its own id
type StoredQualityReport struct {
	ID        string         `json:"id"`
	Threshold float64        `json:"threshold"`
	Report    *QualityReport `json:"report"`
}

// QualityReportRepository stores generated quality reports
type QualityReportRepository interface {
	SaveReport(ctx context.Context, stored *StoredQualityReport) error
	// GetReportByID returns nil, nil when no report exists with the id
	GetReportByID(ctx context.Context, id string) (*StoredQualityReport, error)
}
