package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
reports:
  - id: 10
    title: "Разлив, масло и мусор"
    status: critical
    category: Вода
    date: "2025-10-01"
    lat: 55.75
    lng: 37.61
  - id: 11
    title: Шумная стройка
    status: resolved
    category: Шум
    date: "2025-10-02"
    lat: 55.70
    lng: 37.50
monthly:
  - month: Окт
    reports: 12
    resolved: 7
categories:
  - name: Вода
    value: 60
    color: "#000001"
`

func TestSeed_Contents(t *testing.T) {
	snap, err := Seed().Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Reports, 6)
	assert.Len(t, snap.Monthly, 6)
	assert.Len(t, snap.Categories, 4)

	counts := domain.CountByStatus(snap.Reports)
	assert.Equal(t, domain.StatusCounts{Critical: 3, InProgress: 2, Resolved: 1}, counts)
}

func TestSeed_UniqueIDs(t *testing.T) {
	snap, err := Seed().Snapshot(context.Background())
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, r := range snap.Reports {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
}

func TestStatic_SnapshotIsolation(t *testing.T) {
	src := Seed()
	first, err := src.Snapshot(context.Background())
	require.NoError(t, err)

	first.Reports[0].Title = "mutated"
	first.Reports = first.Reports[:1]

	second, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, second.Reports, 6)
	assert.Equal(t, "Загрязнение реки в парке Горького", second.Reports[0].Title)
}

func TestSnapshot_Palette(t *testing.T) {
	snap := Snapshot{Categories: []domain.CategoryAggregate{{Name: "Вода", Color: "#123456"}}}
	p := snap.Palette()
	assert.Equal(t, "#123456", p["Вода"])
	assert.Equal(t, "#92400E", p["Почва"])
}

func TestDecode(t *testing.T) {
	snap, err := Decode([]byte(sampleYAML))
	require.NoError(t, err)

	require.Len(t, snap.Reports, 2)
	r := snap.Reports[0]
	assert.Equal(t, 10, r.ID)
	assert.Equal(t, "Разлив, масло и мусор", r.Title)
	assert.Equal(t, domain.StatusCritical, r.Status)
	assert.Equal(t, "2025-10-01", r.DateString())
	assert.Equal(t, domain.Geo{Lat: 55.75, Lon: 37.61}, r.Geo)

	assert.Equal(t, []domain.MonthlyAggregate{{Month: "Окт", Reports: 12, Resolved: 7}}, snap.Monthly)
	assert.Equal(t, "#000001", snap.Categories[0].Color)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "bad yaml", doc: "reports: [", want: "load dataset"},
		{name: "unknown status", doc: "reports:\n  - id: 1\n    status: open\n    date: \"2025-01-01\"\n", want: "unknown status"},
		{name: "bad date", doc: "reports:\n  - id: 1\n    status: resolved\n    date: \"01.01.2025\"\n", want: "date"},
		{name: "css in color", doc: "categories:\n  - name: Вода\n    value: 10\n    color: \"red;background:url(x)\"\n", want: "invalid color"},
		{name: "short color", doc: "categories:\n  - name: Вода\n    value: 10\n    color: \"#fff\"\n", want: "invalid color"},
		{name: "missing color", doc: "categories:\n  - name: Вода\n    value: 10\n", want: "invalid color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecode_EmptyDocument(t *testing.T) {
	snap, err := Decode([]byte("reports: []\n"))
	require.NoError(t, err)
	assert.Empty(t, snap.Reports)
}

func TestFile_Snapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	src := NewFile(path)
	snap, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Reports, 2)

	// Read once: later edits on disk are not picked up.
	require.NoError(t, os.WriteFile(path, []byte("reports: []\n"), 0o600))
	snap, err = src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Reports, 2)
}

func TestFile_Missing(t *testing.T) {
	src := NewFile(filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := src.Snapshot(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

type failingSource struct{ err error }

func (f failingSource) Snapshot(context.Context) (Snapshot, error) { return Snapshot{}, f.err }

var _ sharedobs.ReadinessChecker = Readiness{}

func TestReadiness(t *testing.T) {
	assert.NoError(t, Readiness{Source: Seed()}.CheckReadiness(context.Background()))
	assert.NoError(t, Readiness{Source: NewStatic(Snapshot{})}.CheckReadiness(context.Background()))

	err := Readiness{Source: failingSource{err: errors.New("boom")}}.CheckReadiness(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset unavailable")
}
