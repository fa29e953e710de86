package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/postboard/internal/client/models"
	"github.com/dmitrijs2005/postboard/internal/logging"
)

type ReportAPI interface {
	PostsReport(ctx context.Context) ([]models.ReportRow, error)
}

// Report is the read-only comments-per-post summary.
type Report struct {
	api    ReportAPI
	logger logging.Logger

	mu   sync.RWMutex
	rows []models.ReportRow
}

func NewReport(api ReportAPI, logger logging.Logger) *Report {
	return &Report{api: api, logger: logger.With("component", "report")}
}

// Load refreshes the rows. On failure the previous rows are kept.
func (r *Report) Load(ctx context.Context) error {
	rows, err := r.api.PostsReport(ctx)
	if err != nil {
		return fmt.Errorf("error loading report: %w", err)
	}

	r.mu.Lock()
	r.rows = rows
	r.mu.Unlock()

	r.logger.Debug(ctx, "report loaded", "rows", len(rows))
	return nil
}

func (r *Report) Rows() []models.ReportRow {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.ReportRow(nil), r.rows...)
}
