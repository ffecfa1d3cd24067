package domain

import "sort"

// fallbackColor is used for categories missing from a palette.
const fallbackColor = "#9CA3AF"

// MonthlyAggregate pairs a month abbreviation with report totals.
type MonthlyAggregate struct {
	Month    string `json:"month" yaml:"month"`
	Reports  int    `json:"reports" yaml:"reports"`
	Resolved int    `json:"resolved" yaml:"resolved"`
}

// CategoryAggregate is one slice of the category breakdown.
type CategoryAggregate struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"` // percent
	Color string `json:"color" yaml:"color"`
}

// StatusCounts holds the number of reports in each status.
type StatusCounts struct {
	Critical   int `json:"critical"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

// Total is the sum of all counts.
func (c StatusCounts) Total() int {
	return c.Critical + c.InProgress + c.Resolved
}

// Of returns the count for a single status.
func (c StatusCounts) Of(s Status) int {
	switch s {
	case StatusCritical:
		return c.Critical
	case StatusInProgress:
		return c.InProgress
	case StatusResolved:
		return c.Resolved
	default:
		return 0
	}
}

// CountByStatus tallies reports per status. The input is not modified.
func CountByStatus(reports []Report) StatusCounts {
	var c StatusCounts
	for _, r := range reports {
		switch r.Status {
		case StatusCritical:
			c.Critical++
		case StatusInProgress:
			c.InProgress++
		case StatusResolved:
			c.Resolved++
		}
	}
	return c
}

// CategoryShares computes the percentage of reports in each category.
// Categories keep first-seen order. Percentages are whole numbers that sum to
// 100 for a non-empty collection (largest remainder wins the rounding). An
// empty collection yields an empty, non-nil slice.
func CategoryShares(reports []Report, palette map[string]string) []CategoryAggregate {
	if len(reports) == 0 {
		return []CategoryAggregate{}
	}

	var order []string
	counts := make(map[string]int)
	for _, r := range reports {
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		counts[r.Category]++
	}

	total := len(reports)
	shares := make([]CategoryAggregate, len(order))
	type remainder struct {
		idx  int
		frac int
	}
	rems := make([]remainder, len(order))
	assigned := 0
	for i, name := range order {
		scaled := counts[name] * 100
		shares[i] = CategoryAggregate{
			Name:  name,
			Value: scaled / total,
			Color: paletteColor(palette, name),
		}
		assigned += shares[i].Value
		rems[i] = remainder{idx: i, frac: scaled % total}
	}

	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; assigned < 100; i++ {
		shares[rems[i%len(rems)].idx].Value++
		assigned++
	}
	return shares
}

func paletteColor(palette map[string]string, name string) string {
	if c, ok := palette[name]; ok {
		return c
	}
	return fallbackColor
}
