// Package export turns the report collection into downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/domain"
)

// ContentTypeCSV is the MIME type of CSV exports.
const ContentTypeCSV = "text/csv"

const filenamePrefix = "ecopatrol_report_"

// Header is the CSV header row, in column order.
var Header = []string{"ID", "Название", "Статус", "Категория", "Дата"}

// Filename returns the export filename for a YYYY-MM-DD date and extension.
func Filename(date, ext string) string {
	return filenamePrefix + date + "." + ext
}

// WriteCSV writes one header record followed by one record per report, in
// input order. Fields containing commas, quotes or line breaks are quoted.
// An empty collection produces the header alone.
func WriteCSV(w io.Writer, reports []domain.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range reports {
		if err := cw.Write(row(r)); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// EncodeCSV is WriteCSV into a byte slice.
func EncodeCSV(reports []domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, reports); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func row(r domain.Report) []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Title,
		r.Status.Label(),
		r.Category,
		r.DateString(),
	}
}
