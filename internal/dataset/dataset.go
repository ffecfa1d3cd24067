// Package dataset provides the read-only report collection and the authored
// aggregate series behind the dashboard.
package dataset

import (
	"context"
	"fmt"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/domain"
)

// Snapshot is one consistent read of a source. Callers own the slices.
type Snapshot struct {
	Reports    []domain.Report
	Monthly    []domain.MonthlyAggregate
	Categories []domain.CategoryAggregate
}

// Source supplies the dashboard data. Implementations must never mutate
// previously returned snapshots.
type Source interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Palette maps category names to display colors, covering every category in
// the snapshot. Authored category colors take precedence.
func (s Snapshot) Palette() map[string]string {
	p := make(map[string]string, len(defaultPalette)+len(s.Categories))
	for k, v := range defaultPalette {
		p[k] = v
	}
	for _, c := range s.Categories {
		if c.Color != "" {
			p[c.Name] = c.Color
		}
	}
	return p
}

// clone copies every slice so callers cannot reach shared backing arrays.
func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Reports:    append([]domain.Report(nil), s.Reports...),
		Monthly:    append([]domain.MonthlyAggregate(nil), s.Monthly...),
		Categories: append([]domain.CategoryAggregate(nil), s.Categories...),
	}
}

// Static serves a fixed snapshot held in memory.
type Static struct {
	snap Snapshot
}

// NewStatic wraps a snapshot. The snapshot is copied.
func NewStatic(snap Snapshot) *Static {
	return &Static{snap: snap.clone()}
}

// Seed returns a Static source with the built-in sample data.
func Seed() *Static {
	return NewStatic(Snapshot{
		Reports:    seedReports(),
		Monthly:    seedMonthly(),
		Categories: seedCategories(),
	})
}

func (s *Static) Snapshot(_ context.Context) (Snapshot, error) {
	return s.snap.clone(), nil
}

// Readiness adapts a Source to the HTTP readiness probe: the service is
// ready once a snapshot can be read. An empty collection is still ready.
type Readiness struct {
	Source Source
}

func (r Readiness) CheckReadiness(ctx context.Context) error {
	if _, err := r.Source.Snapshot(ctx); err != nil {
		return fmt.Errorf("dataset unavailable: %w", err)
	}
	return nil
}
