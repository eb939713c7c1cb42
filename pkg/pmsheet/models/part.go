package models

// Part is one maintained component, read from a column of the part table.
type Part struct {
	// Name is taken from the "Maintenance Done" row. Never blank.
	Name string `json:"Part Name"`
	// Maintenance maps each discovered field to this column's cell.
	Maintenance Fields `json:"Maintenance"`
	// History lists the logged maintenance events for this part.
	History []HistoryEntry `json:"Historical_Maintenance,omitempty"`
}

// HistoryEntry is one completed maintenance event from the history log.
type HistoryEntry struct {
	Date             interface{} `json:"Last PM Done"`
	Technician       interface{} `json:"Technician"`
	WorkOrder        interface{} `json:"Work Order"`
	PONumber         interface{} `json:"Po Number"`
	MaintenanceType  string      `json:"Maintenance Type"`
	CompletionStatus string      `json:"Completion Status"`
}

// History groups history entries by part name, in order of first discovery.
type History struct {
	names   []string
	entries map[string][]HistoryEntry
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{entries: make(map[string][]HistoryEntry)}
}

// Add appends an entry for the named part.
func (h *History) Add(part string, e HistoryEntry) {
	if _, ok := h.entries[part]; !ok {
		h.names = append(h.names, part)
	}
	h.entries[part] = append(h.entries[part], e)
}

// Names returns the part names in discovery order.
func (h *History) Names() []string {
	return h.names
}

// Entries returns the entries recorded for a part.
func (h *History) Entries(part string) ([]HistoryEntry, bool) {
	e, ok := h.entries[part]
	return e, ok
}

// Len returns the number of parts with history.
func (h *History) Len() int {
	return len(h.names)
}
