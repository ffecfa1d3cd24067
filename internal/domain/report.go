package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for report dates.
const DateLayout = "2006-01-02"

// Status is the lifecycle stage of a report.
type Status string

const (
	StatusCritical   Status = "critical"
	StatusInProgress Status = "inProgress"
	StatusResolved   Status = "resolved"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusCritical, StatusInProgress, StatusResolved}

var statusLabels = map[Status]string{
	StatusCritical:   "Критично",
	StatusInProgress: "В работе",
	StatusResolved:   "Решено",
}

var statusColors = map[Status]string{
	StatusCritical:   "#EF4444",
	StatusInProgress: "#F59E0B",
	StatusResolved:   "#22C55E",
}

// ParseStatus converts a wire value into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := statusLabels[st]; !ok {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// Label returns the localized display label.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Color returns the badge and marker color.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "#9CA3AF"
}

func (s Status) String() string { return string(s) }

// Geo is a WGS-84 latitude/longitude pair.
type Geo struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Report is a single logged environmental issue.
type Report struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Status   Status    `json:"status"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	Geo      Geo       `json:"geo"`
}

// DateString formats the report date as YYYY-MM-DD.
func (r Report) DateString() string {
	return r.Date.Format(DateLayout)
}

// FindReport returns the report with the given id.
func FindReport(reports []Report, id int) (Report, bool) {
	for _, r := range reports {
		if r.ID == id {
			return r, true
		}
	}
	return Report{}, false
}

// ErrReportNotFound is returned when a report id is not in the collection.
var ErrReportNotFound = errors.New("report not found")
