package site

// PanelState is a panel with its open flag, as returned to the page.
type PanelState struct {
	Panel
	ID   string `json:"id"`
	Open bool   `json:"open"`
}

// Accordion tracks which panel of a group is open. At most one panel is open
// at a time. An Accordion is not safe for concurrent use.
type Accordion struct {
	group  string
	panels []Panel
	open   string
}

// NewAccordion returns an accordion with every panel closed.
func NewAccordion(group string, panels []Panel) *Accordion {
	return &Accordion{group: group, panels: panels}
}

// Group returns the accordion's group name.
func (a *Accordion) Group() string {
	return a.group
}

// Open returns the key of the open panel, or "" when all are closed.
func (a *Accordion) Open() string {
	return a.open
}

// IsOpen reports whether the panel is open.
func (a *Accordion) IsOpen(key string) bool {
	return key != "" && a.open == key
}

// Restore opens key without toggling. Unknown keys close every panel.
func (a *Accordion) Restore(key string) {
	if a.has(key) {
		a.open = key
		return
	}
	a.open = ""
}

// Toggle opens a closed panel, closing the others, or closes an open one.
// Unknown keys are a no-op and report false.
func (a *Accordion) Toggle(key string) bool {
	if !a.has(key) {
		return false
	}
	if a.open == key {
		a.open = ""
	} else {
		a.open = key
	}
	return true
}

// State returns every panel of the group in content order.
func (a *Accordion) State() []PanelState {
	states := make([]PanelState, 0, len(a.panels))
	for _, p := range a.panels {
		states = append(states, PanelState{
			Panel: p,
			ID:    PanelID(a.group, p.Key),
			Open:  a.IsOpen(p.Key),
		})
	}
	return states
}

func (a *Accordion) has(key string) bool {
	if key == "" {
		return false
	}
	for _, p := range a.panels {
		if p.Key == key {
			return true
		}
	}
	return false
}

// PanelID is the element id of a panel, e.g. "pricing-starter".
func PanelID(group, key string) string {
	return group + "-" + key
}
