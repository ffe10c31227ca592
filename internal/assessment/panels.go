package assessment

// Panels is the ordered set of question panels of an assessment and the one
// currently shown.
type Panels struct {
	ids    []string
	active int
}

// NewPanels creates a container showing the first of ids.
func NewPanels(ids []string) *Panels {
	return &Panels{ids: append([]string(nil), ids...)}
}

// Len returns the number of panels.
func (p *Panels) Len() int { return len(p.ids) }

// IDs returns the panel ids in order.
func (p *Panels) IDs() []string { return append([]string(nil), p.ids...) }

// Index returns the position of id, or -1.
func (p *Panels) Index(id string) int {
	for i, pid := range p.ids {
		if pid == id {
			return i
		}
	}
	return -1
}

// NextSibling returns the panel after id. A panel that is not in the
// container has no sibling.
func (p *Panels) NextSibling(id string) (string, bool) {
	i := p.Index(id)
	if i < 0 || i+1 >= len(p.ids) {
		return "", false
	}
	return p.ids[i+1], true
}

// Active returns the id of the panel shown, or "" for an empty container.
func (p *Panels) Active() string {
	if len(p.ids) == 0 {
		return ""
	}
	return p.ids[p.active]
}

// ActiveIndex returns the position of the panel shown.
func (p *Panels) ActiveIndex() int { return p.active }

// Next shows the following panel. It returns false on the last panel.
func (p *Panels) Next() bool {
	if p.active+1 >= len(p.ids) {
		return false
	}
	p.active++
	return true
}

// Select shows the panel at i.
func (p *Panels) Select(i int) bool {
	if i < 0 || i >= len(p.ids) {
		return false
	}
	p.active = i
	return true
}

// Restart shows the first panel again.
func (p *Panels) Restart() {
	p.active = 0
}
