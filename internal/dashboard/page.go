// Package dashboard assembles and renders the EcoPatrol page.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/dataset"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/domain"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/observability"
)

// ExportStatus exposes the export-in-progress indicator.
type ExportStatus interface {
	InProgress() bool
}

// SummaryCard is one of the four header cards.
type SummaryCard struct {
	Title  string
	Value  int
	Note   string
	Accent string
}

// MonthlyBar is a monthly aggregate with bar widths relative to the busiest month.
type MonthlyBar struct {
	domain.MonthlyAggregate
	ReportsPct  int
	ResolvedPct int
}

// ReportItem is one row in the list panel.
type ReportItem struct {
	domain.Report
	Selected bool
}

// MapChip is a marker stand-in on the placeholder map.
type MapChip struct {
	ID       int
	Category string
	Color    string
	Place    string
	Geo      domain.Geo
}

// Footer holds the static footer content.
type Footer struct {
	Email     string
	Phone     string
	About     string
	Processed int
	Resolved  int
}

// Page is everything one render needs.
type Page struct {
	Title      string
	Subtitle   string
	Tab        Tab
	Tabs       []Tab
	Total      int
	Counts     domain.StatusCounts
	Cards      []SummaryCard
	Monthly    []MonthlyBar
	Categories []domain.CategoryAggregate
	Reports    []ReportItem
	MapChips   []MapChip
	Exporting  bool
	Notice     string
	Footer     Footer
}

var staticFooter = Footer{
	Email:     "info@ecopatrol.ru",
	Phone:     "+7 (495) 123-45-67",
	About:     "ЭкоПатруль — современная система мониторинга экологических проблем города",
	Processed: 347,
	Resolved:  289,
}

// Builder assembles Page values from the data source and view state.
type Builder struct {
	source         dataset.Source
	exports        ExportStatus
	geocoder       domain.Geocoder
	computedShares bool
	logger         *slog.Logger
	metrics        *observability.Metrics
}

// NewBuilder creates a Builder. A nil geocoder leaves map chips without place
// names. With computedShares the category breakdown is derived from the live
// collection instead of the authored series.
func NewBuilder(src dataset.Source, exports ExportStatus, geocoder domain.Geocoder, computedShares bool, logger *slog.Logger, metrics *observability.Metrics) *Builder {
	return &Builder{
		source:         src,
		exports:        exports,
		geocoder:       geocoder,
		computedShares: computedShares,
		logger:         logger,
		metrics:        metrics,
	}
}

// Build reads a snapshot and derives the page for the current state.
func (b *Builder) Build(ctx context.Context, state *State, notice string) (Page, error) {
	snap, err := b.source.Snapshot(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("build page: %w", err)
	}

	tab := state.Tab()
	counts := domain.CountByStatus(snap.Reports)
	selected, hasSelected := state.Selected()

	categories := snap.Categories
	if b.computedShares {
		categories = domain.CategoryShares(snap.Reports, snap.Palette())
	}

	items := make([]ReportItem, len(snap.Reports))
	for i, r := range snap.Reports {
		items[i] = ReportItem{Report: r, Selected: hasSelected && r.ID == selected}
	}

	p := Page{
		Title:      "ЭкоПатруль",
		Subtitle:   "Мониторинг городской экологии",
		Tab:        tab,
		Tabs:       Tabs,
		Total:      len(snap.Reports),
		Counts:     counts,
		Cards:      summaryCards(len(snap.Reports), counts),
		Monthly:    monthlyBars(snap.Monthly),
		Categories: categories,
		Reports:    items,
		Exporting:  b.exports != nil && b.exports.InProgress(),
		Notice:     notice,
		Footer:     staticFooter,
	}
	if tab == TabMap {
		p.MapChips = b.mapChips(ctx, snap.Reports)
	}

	b.metrics.PageRenders.WithLabelValues(string(tab)).Inc()
	return p, nil
}

var statusCards = map[domain.Status]struct{ title, note string }{
	domain.StatusCritical:   {title: "Критичные", note: "Требуют внимания"},
	domain.StatusInProgress: {title: "В работе", note: "В процессе решения"},
	domain.StatusResolved:   {title: "Решено", note: "За последнюю неделю"},
}

func summaryCards(total int, c domain.StatusCounts) []SummaryCard {
	cards := make([]SummaryCard, 0, len(domain.Statuses)+1)
	cards = append(cards, SummaryCard{Title: "Всего отчётов", Value: total, Note: "За текущий месяц", Accent: "#0EA5E9"})
	for _, st := range domain.Statuses {
		meta := statusCards[st]
		cards = append(cards, SummaryCard{Title: meta.title, Value: c.Of(st), Note: meta.note, Accent: st.Color()})
	}
	return cards
}

func monthlyBars(monthly []domain.MonthlyAggregate) []MonthlyBar {
	peak := 0
	for _, m := range monthly {
		peak = max(peak, m.Reports, m.Resolved)
	}
	bars := make([]MonthlyBar, len(monthly))
	for i, m := range monthly {
		bars[i] = MonthlyBar{MonthlyAggregate: m}
		if peak > 0 {
			bars[i].ReportsPct = m.Reports * 100 / peak
			bars[i].ResolvedPct = m.Resolved * 100 / peak
		}
	}
	return bars
}

// mapChips builds map markers, resolving place names when a geocoder is set.
// Geocoding failures leave the place empty.
func (b *Builder) mapChips(ctx context.Context, reports []domain.Report) []MapChip {
	chips := make([]MapChip, len(reports))
	for i, r := range reports {
		chips[i] = MapChip{ID: r.ID, Category: r.Category, Color: r.Status.Color(), Geo: r.Geo}
		if b.geocoder == nil {
			continue
		}
		place, err := b.geocoder.ReverseGeocode(ctx, r.Geo.Lat, r.Geo.Lon)
		if err != nil {
			b.logger.Warn("reverse geocoding failed",
				"report_id", r.ID,
				"lat", r.Geo.Lat,
				"lon", r.Geo.Lon,
				"error", err,
			)
			continue
		}
		chips[i].Place = place.Name
	}
	return chips
}

// Select marks the report with the given id as selected. It returns
// domain.ErrReportNotFound when the collection has no such report.
func (b *Builder) Select(ctx context.Context, state *State, id int) error {
	snap, err := b.source.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("select report: %w", err)
	}
	if _, ok := domain.FindReport(snap.Reports, id); !ok {
		return fmt.Errorf("select report %d: %w", id, domain.ErrReportNotFound)
	}
	state.Select(id)
	b.metrics.ReportsSelected.Inc()
	return nil
}
