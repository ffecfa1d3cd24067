package dashboard

import (
	"fmt"
	"html/template"
	"io"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/domain"
)

var funcMap = template.FuncMap{
	"statusLabel": func(s domain.Status) string { return s.Label() },
	"statusColor": func(s domain.Status) string { return s.Color() },
	"fmtCoord": func(g domain.Geo) string {
		return fmt.Sprintf("%.4f, %.4f", g.Lat, g.Lon)
	},
	// css marks inline style values as safe. Colors are #RRGGBB: status
	// colors are constants and dataset colors are checked at load.
	"css": func(s string) template.CSS { return template.CSS(s) },
}

var pageTmpl = template.Must(template.New("page").Funcs(funcMap).Parse(tmplBase + tmplHeader + tmplAnalytics + tmplReports + tmplMap + tmplFooter))

// Render writes the full HTML page.
func Render(w io.Writer, p Page) error {
	if err := pageTmpl.ExecuteTemplate(w, "base", p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
