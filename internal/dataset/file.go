package dataset

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// hexColor matches #RRGGBB. Category colors end up in inline styles.
var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// fileDocument is the YAML layout of a dataset file.
type fileDocument struct {
	Reports    []fileReport               `yaml:"reports"`
	Monthly    []domain.MonthlyAggregate  `yaml:"monthly"`
	Categories []domain.CategoryAggregate `yaml:"categories"`
}

type fileReport struct {
	ID       int     `yaml:"id"`
	Title    string  `yaml:"title"`
	Status   string  `yaml:"status"`
	Category string  `yaml:"category"`
	Date     string  `yaml:"date"`
	Lat      float64 `yaml:"lat"`
	Lng      float64 `yaml:"lng"`
}

// File serves a snapshot decoded from a YAML file. The file is read once, on
// first use, and the result is reused for the life of the process.
type File struct {
	path string

	once sync.Once
	snap Snapshot
	err  error
}

// NewFile creates a source backed by the YAML file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Snapshot(_ context.Context) (Snapshot, error) {
	f.once.Do(func() {
		f.snap, f.err = loadFile(f.path)
	})
	if f.err != nil {
		return Snapshot{}, f.err
	}
	return f.snap.clone(), nil
}

func loadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load dataset: %w", err)
	}
	return Decode(data)
}

// Decode parses a YAML dataset document.
func Decode(data []byte) (Snapshot, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, fmt.Errorf("load dataset: %w", err)
	}

	reports := make([]domain.Report, 0, len(doc.Reports))
	for i, fr := range doc.Reports {
		status, err := domain.ParseStatus(fr.Status)
		if err != nil {
			return Snapshot{}, fmt.Errorf("load dataset: report %d: %w", i, err)
		}
		date, err := time.Parse(domain.DateLayout, fr.Date)
		if err != nil {
			return Snapshot{}, fmt.Errorf("load dataset: report %d: date: %w", i, err)
		}
		reports = append(reports, domain.Report{
			ID:       fr.ID,
			Title:    fr.Title,
			Status:   status,
			Category: fr.Category,
			Date:     date,
			Geo:      domain.Geo{Lat: fr.Lat, Lon: fr.Lng},
		})
	}

	for i, c := range doc.Categories {
		if !hexColor.MatchString(c.Color) {
			return Snapshot{}, fmt.Errorf("load dataset: category %d (%s): invalid color %q", i, c.Name, c.Color)
		}
	}

	return Snapshot{
		Reports:    reports,
		Monthly:    doc.Monthly,
		Categories: doc.Categories,
	}, nil
}
