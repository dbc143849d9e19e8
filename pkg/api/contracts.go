// Package api defines the outward-facing contracts of the estimation
// service: persistence, document rendering, and notification. The
// decision plane stays pure; side effects live behind these interfaces
// and are injected into the HTTP server.
package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bati-cost/decision/estimation"
	"bati-cost/decision/record"
)

// EstimateSummary is the stored view of one completed estimation.
type EstimateSummary struct {
	ID          uuid.UUID           `json:"id"`
	CreatedAt   time.Time           `json:"created_at"`
	City        string              `json:"city,omitempty"`
	ProjectType string              `json:"project_type,omitempty"`
	SurfaceM2   float64             `json:"surface_m2,omitempty"`
	GlobalTTC   decimal.Decimal     `json:"global_ttc"`
	Record      record.AnswerRecord `json:"record"`
}

// NewEstimateSummary snapshots a record and its computed result.
func NewEstimateSummary(r *record.AnswerRecord, res *estimation.EstimationResult) EstimateSummary {
	s := EstimateSummary{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		GlobalTTC: res.GlobalCostTTC,
	}
	if r != nil {
		s.Record = *r.Clone()
		if r.City != nil {
			s.City = *r.City
		}
		if r.ProjectType != nil {
			s.ProjectType = *r.ProjectType
		}
		s.SurfaceM2 = r.Surface.Float64()
	}
	return s
}

// EstimateStore persists completed estimations.
type EstimateStore interface {
	Save(ctx context.Context, s EstimateSummary) (uuid.UUID, error)
	List(ctx context.Context, limit int) ([]EstimateSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PDFRenderer turns an estimation into a downloadable document.
type PDFRenderer interface {
	Render(ctx context.Context, s EstimateSummary, res *estimation.EstimationResult) ([]byte, error)
}

// Notifier sends the estimation recap to the contact left in the record.
type Notifier interface {
	NotifyEstimate(ctx context.Context, email string, s EstimateSummary) error
}
