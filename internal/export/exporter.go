package export

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/dataset"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/domain"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/observability"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// PDFNotice is shown to the user in place of a PDF download.
const PDFNotice = "PDF экспорт: В продакшене здесь будет генерация PDF через backend"

// DefaultDelay is how long the in-progress indicator stays set after an export.
const DefaultDelay = 500 * time.Millisecond

// Archiver stores a copy of a finished export.
type Archiver interface {
	Archive(ctx context.Context, name, contentType string, data []byte) error
}

// PDFRequest asks the external rendering backend for a PDF of the given reports.
type PDFRequest struct {
	RequestID   string    `json:"request_id"`
	Filename    string    `json:"filename"`
	ReportIDs   []int     `json:"report_ids"`
	RequestedAt time.Time `json:"requested_at"`
}

// PDFRequester hands PDF requests to the external backend.
type PDFRequester interface {
	RequestPDF(ctx context.Context, req PDFRequest) error
}

// File is a generated export ready for download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	Rows        int
}

// Options configures an Exporter. Nil Archiver or PDFRequester disables that
// integration; a nil Clock uses the domain clock.
type Options struct {
	Delay        time.Duration
	Archiver     Archiver
	PDFRequester PDFRequester
	Clock        clockwork.Clock
}

// Exporter produces exports from a dataset source and owns the cosmetic
// "export in progress" indicator.
type Exporter struct {
	source    dataset.Source
	archiver  Archiver
	requester PDFRequester
	clock     clockwork.Clock
	delay     time.Duration
	logger    *slog.Logger
	metrics   *observability.Metrics

	inProgress atomic.Bool
}

// NewExporter creates an Exporter reading from src.
func NewExporter(src dataset.Source, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Exporter {
	clk := opts.Clock
	if clk == nil {
		clk = domain.Clock()
	}
	return &Exporter{
		source:    src,
		archiver:  opts.Archiver,
		requester: opts.PDFRequester,
		clock:     clk,
		delay:     opts.Delay,
		logger:    logger,
		metrics:   metrics,
	}
}

// InProgress reports whether the export indicator is set.
func (e *Exporter) InProgress() bool {
	return e.inProgress.Load()
}

// CSV generates the CSV export of the current collection.
func (e *Exporter) CSV(ctx context.Context) (File, error) {
	e.begin()
	defer e.finish()

	snap, err := e.source.Snapshot(ctx)
	if err != nil {
		e.metrics.Exports.WithLabelValues("csv", "error").Inc()
		return File{}, fmt.Errorf("csv export: %w", err)
	}

	data, err := EncodeCSV(snap.Reports)
	if err != nil {
		e.metrics.Exports.WithLabelValues("csv", "error").Inc()
		return File{}, fmt.Errorf("csv export: %w", err)
	}

	f := File{
		Name:        Filename(e.today(), "csv"),
		ContentType: ContentTypeCSV,
		Data:        data,
		Rows:        len(snap.Reports),
	}
	e.metrics.Exports.WithLabelValues("csv", "success").Inc()
	e.metrics.ExportRows.Observe(float64(f.Rows))
	e.logger.Info("csv export generated", "filename", f.Name, "rows", f.Rows, "bytes", len(f.Data))

	e.archive(ctx, f)
	return f, nil
}

// PDF is the alternate-format export. PDF rendering is left to an external
// backend, so this only returns the notice and, when a requester is
// configured, forwards a render request. Request failures are logged and the
// notice is still returned. The dataset is never modified.
func (e *Exporter) PDF(ctx context.Context) string {
	e.begin()
	defer e.finish()

	e.metrics.Exports.WithLabelValues("pdf", "success").Inc()
	if e.requester == nil {
		return PDFNotice
	}

	snap, err := e.source.Snapshot(ctx)
	if err != nil {
		e.logger.Warn("pdf request skipped", "error", err)
		return PDFNotice
	}

	req := PDFRequest{
		RequestID:   uuid.NewString(),
		Filename:    Filename(e.today(), "pdf"),
		ReportIDs:   make([]int, len(snap.Reports)),
		RequestedAt: e.clock.Now().UTC(),
	}
	for i, r := range snap.Reports {
		req.ReportIDs[i] = r.ID
	}

	if err := e.requester.RequestPDF(ctx, req); err != nil {
		e.metrics.PDFRequests.WithLabelValues("error").Inc()
		e.logger.Warn("pdf request failed", "request_id", req.RequestID, "error", err)
		return PDFNotice
	}
	e.metrics.PDFRequests.WithLabelValues("published").Inc()
	e.logger.Info("pdf request published", "request_id", req.RequestID, "reports", len(req.ReportIDs))
	return PDFNotice
}

func (e *Exporter) archive(ctx context.Context, f File) {
	if e.archiver == nil {
		return
	}
	if err := e.archiver.Archive(ctx, f.Name, f.ContentType, f.Data); err != nil {
		e.metrics.ArchiveUploads.WithLabelValues("error").Inc()
		e.logger.Warn("export archive failed", "filename", f.Name, "error", err)
		return
	}
	e.metrics.ArchiveUploads.WithLabelValues("success").Inc()
}

func (e *Exporter) today() string {
	return e.clock.Now().UTC().Format(domain.DateLayout)
}

func (e *Exporter) begin() {
	e.inProgress.Store(true)
	e.metrics.ExportInProgress.Set(1)
}

// finish clears the indicator after the configured delay. The timer is never
// cancelled; overlapping exports may clear each other's indicator early.
func (e *Exporter) finish() {
	if e.delay <= 0 {
		e.clear()
		return
	}
	e.clock.AfterFunc(e.delay, e.clear)
}

func (e *Exporter) clear() {
	e.inProgress.Store(false)
	e.metrics.ExportInProgress.Set(0)
}
