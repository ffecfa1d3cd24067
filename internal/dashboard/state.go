package dashboard

import "sync"

// Tab identifies one of the three interchangeable panels.
type Tab string

const (
	TabAnalytics Tab = "analytics"
	TabReports   Tab = "reports"
	TabMap       Tab = "map"
)

// Tabs lists the panels in display order.
var Tabs = []Tab{TabAnalytics, TabReports, TabMap}

var tabLabels = map[Tab]string{
	TabAnalytics: "Аналитика",
	TabReports:   "Отчёты",
	TabMap:       "Карта",
}

// ParseTab reports whether s names a known tab.
func ParseTab(s string) (Tab, bool) {
	t := Tab(s)
	_, ok := tabLabels[t]
	return t, ok
}

// Label returns the tab caption.
func (t Tab) Label() string { return tabLabels[t] }

// State is the view-local state: which report is selected and which panel is
// showing. Handlers run concurrently, so access is guarded.
type State struct {
	mu          sync.RWMutex
	selected    int
	hasSelected bool
	tab         Tab
}

// NewState returns a state showing the analytics panel with nothing selected.
func NewState() *State {
	return &State{tab: TabAnalytics}
}

// Select marks the report with the given id. Selecting the current report
// again leaves the state unchanged.
func (s *State) Select(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
	s.hasSelected = true
}

// Selected returns the selected report id, if any.
func (s *State) Selected() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.hasSelected
}

// SetTab switches panels. Unknown tabs are ignored and false is returned.
func (s *State) SetTab(t Tab) bool {
	if _, ok := tabLabels[t]; !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = t
	return true
}

// Tab returns the active panel.
func (s *State) Tab() Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tab
}
