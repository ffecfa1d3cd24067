package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/dashboard"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/dataset"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/domain"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/export"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PageBuilder assembles the dashboard page and applies selections.
type PageBuilder interface {
	Build(ctx context.Context, state *dashboard.State, notice string) (dashboard.Page, error)
	Select(ctx context.Context, state *dashboard.State, id int) error
}

// Exporter produces the CSV download and the alternate-format notice.
type Exporter interface {
	CSV(ctx context.Context) (export.File, error)
	PDF(ctx context.Context) string
}

// Dashboard bundles what the page and export routes need.
type Dashboard struct {
	Pages   PageBuilder
	State   *dashboard.State
	Exports Exporter
	Source  dataset.Source
	// ComputedShares mirrors the page setting for /api/summary.
	ComputedShares bool
}

// Server exposes the dashboard plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	dash       Dashboard
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the dashboard routes and /healthz,
// /readyz, and /metrics.
func NewServer(addr string, dash Dashboard, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		dash:   dash,
		logger: logger,
	}

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("POST /reports/{id}/select", s.handleSelect)
	mux.HandleFunc("GET /export/csv", s.handleExportCSV)
	mux.HandleFunc("POST /export/pdf", s.handleExportPDF)
	mux.HandleFunc("GET /api/summary", s.handleSummary)

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if v := q.Get("tab"); v != "" {
		if tab, ok := dashboard.ParseTab(v); ok {
			s.dash.State.SetTab(tab)
		}
	}

	var notice string
	if q.Get("notice") == "pdf" {
		notice = export.PDFNotice
	}

	page, err := s.dash.Pages.Build(r.Context(), s.dash.State, notice)
	if err != nil {
		s.logger.Error("build page failed", "error", err)
		http.Error(w, "dashboard unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.Render(w, page); err != nil {
		s.logger.Error("render page failed", "error", err)
	}
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid report id", http.StatusBadRequest)
		return
	}

	if err := s.dash.Pages.Select(r.Context(), s.dash.State, id); err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		s.logger.Error("select report failed", "report_id", id, "error", err)
		http.Error(w, "dashboard unavailable", http.StatusInternalServerError)
		return
	}

	s.dash.State.SetTab(dashboard.TabReports)
	http.Redirect(w, r, fmt.Sprintf("/?tab=%s#report-%d", dashboard.TabReports, id), http.StatusSeeOther)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	f, err := s.dash.Exports.CSV(r.Context())
	if err != nil {
		s.logger.Error("csv export failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", f.ContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(f.Data) //nolint:errcheck // client may have gone away
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	msg := s.dash.Exports.PDF(r.Context())

	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		tab := s.dash.State.Tab()
		if v, ok := dashboard.ParseTab(r.URL.Query().Get("tab")); ok {
			tab = v
		}
		http.Redirect(w, r, fmt.Sprintf("/?tab=%s&notice=pdf", tab), http.StatusSeeOther)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

type summaryResponse struct {
	Total          int                        `json:"total"`
	Counts         domain.StatusCounts        `json:"counts"`
	Monthly        []domain.MonthlyAggregate  `json:"monthly"`
	Categories     []domain.CategoryAggregate `json:"categories"`
	CategoryShares []domain.CategoryAggregate `json:"category_shares"`
	Exporting      bool                       `json:"exporting"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snap, err := s.dash.Source.Snapshot(r.Context())
	if err != nil {
		s.logger.Error("summary failed", "error", err)
		sharedobs.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}

	resp := summaryResponse{
		Total:          len(snap.Reports),
		Counts:         domain.CountByStatus(snap.Reports),
		Monthly:        snap.Monthly,
		Categories:     snap.Categories,
		CategoryShares: domain.CategoryShares(snap.Reports, snap.Palette()),
	}
	if s.dash.ComputedShares {
		resp.Categories = resp.CategoryShares
	}
	// Encode empty series as [] rather than null.
	if resp.Monthly == nil {
		resp.Monthly = []domain.MonthlyAggregate{}
	}
	if resp.Categories == nil {
		resp.Categories = []domain.CategoryAggregate{}
	}
	if st, ok := s.dash.Exports.(dashboard.ExportStatus); ok {
		resp.Exporting = st.InProgress()
	}
	sharedobs.WriteJSON(w, http.StatusOK, resp)
}
