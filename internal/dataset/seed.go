package dataset

import "github.com/couchcryptid/ecopatrol-dashboard/internal/domain"

var defaultPalette = map[string]string{
	"Вода":         "#0EA5E9",
	"Воздух":       "#8B5CF6",
	"Отходы":       "#F59E0B",
	"Шум":          "#EF4444",
	"Зелёные зоны": "#22C55E",
	"Почва":        "#92400E",
}

func seedReports() []domain.Report {
	return []domain.Report{
		{ID: 1, Title: "Загрязнение реки в парке Горького", Status: domain.StatusCritical, Category: "Вода", Date: domain.MustDate("2025-11-20"), Geo: domain.Geo{Lat: 55.7308, Lon: 37.6017}},
		{ID: 2, Title: "Несанкционированная свалка на ул. Ленина", Status: domain.StatusInProgress, Category: "Отходы", Date: domain.MustDate("2025-11-21"), Geo: domain.Geo{Lat: 55.7387, Lon: 37.6032}},
		{ID: 3, Title: "Превышение шума от стройки", Status: domain.StatusResolved, Category: "Шум", Date: domain.MustDate("2025-11-18"), Geo: domain.Geo{Lat: 55.7298, Lon: 37.5983}},
		{ID: 4, Title: "Выбросы от завода", Status: domain.StatusCritical, Category: "Воздух", Date: domain.MustDate("2025-11-22"), Geo: domain.Geo{Lat: 55.7425, Lon: 37.6108}},
		{ID: 5, Title: "Незаконная вырубка деревьев", Status: domain.StatusInProgress, Category: "Зелёные зоны", Date: domain.MustDate("2025-11-19"), Geo: domain.Geo{Lat: 55.7349, Lon: 37.5956}},
		{ID: 6, Title: "Утечка нефтепродуктов", Status: domain.StatusCritical, Category: "Почва", Date: domain.MustDate("2025-11-23"), Geo: domain.Geo{Lat: 55.7465, Lon: 37.6145}},
	}
}

func seedMonthly() []domain.MonthlyAggregate {
	return []domain.MonthlyAggregate{
		{Month: "Янв", Reports: 45, Resolved: 38},
		{Month: "Фев", Reports: 52, Resolved: 41},
		{Month: "Мар", Reports: 61, Resolved: 55},
		{Month: "Апр", Reports: 48, Resolved: 43},
		{Month: "Май", Reports: 70, Resolved: 58},
		{Month: "Июн", Reports: 65, Resolved: 62},
	}
}

// seedCategories is authored separately from the report collection and does
// not match it.
func seedCategories() []domain.CategoryAggregate {
	return []domain.CategoryAggregate{
		{Name: "Вода", Value: 28, Color: "#0EA5E9"},
		{Name: "Воздух", Value: 22, Color: "#8B5CF6"},
		{Name: "Отходы", Value: 35, Color: "#F59E0B"},
		{Name: "Шум", Value: 15, Color: "#EF4444"},
	}
}
