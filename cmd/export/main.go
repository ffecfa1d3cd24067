// Command export writes the CSV export of a dataset using the same encoder
// as the dashboard's download endpoint.
//
// Usage:
//
//	go run ./cmd/export -dataset data/reports.yaml -out-dir exports
//	go run ./cmd/export > reports.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/dataset"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/domain"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/export"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	datasetPath := flag.String("dataset", "", "YAML dataset file (default: built-in seed)")
	outDir := flag.String("out-dir", "", "directory to write the dated CSV file into (default: stdout)")
	flag.Parse()

	var source dataset.Source = dataset.Seed()
	if *datasetPath != "" {
		source = dataset.NewFile(*datasetPath)
	}

	snap, err := source.Snapshot(context.Background())
	if err != nil {
		return err
	}

	if *outDir == "" {
		return export.WriteCSV(os.Stdout, snap.Reports)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(*outDir, export.Filename(domain.Today(), "csv"))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteCSV(f, snap.Reports); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Printf("wrote %d reports to %s", len(snap.Reports), path)
	return nil
}
