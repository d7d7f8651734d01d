package content

// Reveal timing in frame ticks
const (
	RevealTicks  = 36 // fade/slide duration of one section or item
	StaggerTicks = 12 // delay between consecutive items of a section
	SlideLines   = 2  // rows a revealing line starts below its resting row
)

// reveal tracks a section's one-shot entrance
type reveal struct {
	started bool
	start   uint64
}

// View is the scrollable, revealable projection of a document onto a panel
type View struct {
	doc    *Document
	lines  []Line
	width  int
	height int
	offset int

	reveals []reveal
	tick    uint64

	visible bool
}

// NewView creates a visible view; call Resize before use
func NewView(doc *Document) *View {
	return &View{
		doc:     doc,
		reveals: make([]reveal, len(doc.Sections)),
		visible: true,
	}
}

// Resize relays the document for a width×height panel and clamps the scroll
func (v *View) Resize(width, height int) {
	if width == v.width && height == v.height && v.lines != nil {
		return
	}
	v.width = max(width, 0)
	v.height = max(height, 0)
	v.lines = Layout(v.doc, v.width)
	v.ScrollTo(v.offset)
}

// Lines returns the laid-out document
func (v *View) Lines() []Line {
	return v.lines
}

// Size returns the panel dimensions
func (v *View) Size() (int, int) {
	return v.width, v.height
}

// Offset returns the index of the first visible line
func (v *View) Offset() int {
	return v.offset
}

// MaxOffset is the largest scroll offset that still fills the panel
func (v *View) MaxOffset() int {
	return max(len(v.lines)-v.height, 0)
}

// Scroll moves the offset by delta lines
func (v *View) Scroll(delta int) {
	v.ScrollTo(v.offset + delta)
}

// ScrollTo sets the offset, clamped to the content height
func (v *View) ScrollTo(offset int) {
	v.offset = min(max(offset, 0), v.MaxOffset())
}

// Page returns the scroll distance of one page
func (v *View) Page() int {
	return max(v.height-2, 1)
}

// IsVisible implements render.VisibilityToggle
func (v *View) IsVisible() bool {
	return v.visible
}

// Toggle flips panel visibility
func (v *View) Toggle() {
	v.visible = !v.visible
}

// Update advances the reveal clock and starts reveals for sections with any
// line inside the viewport; hidden panels reveal nothing
func (v *View) Update(tick uint64) {
	v.tick = tick
	if !v.visible {
		return
	}
	end := min(v.offset+v.height, len(v.lines))
	for i := v.offset; i < end; i++ {
		s := v.lines[i].Section
		if s < 0 || s >= len(v.reveals) || v.reveals[s].started {
			continue
		}
		v.reveals[s] = reveal{started: true, start: tick}
	}
}

// Revealed reports whether a section's reveal has started
func (v *View) Revealed(section int) bool {
	if section < 0 || section >= len(v.reveals) {
		return true
	}
	return v.reveals[section].started
}

// Progress returns the reveal progress in [0, 1] for a section child
// Header and footer rows (section -1) are always shown
func (v *View) Progress(section, item int) float64 {
	if section < 0 || section >= len(v.reveals) {
		return 1
	}
	r := v.reveals[section]
	if !r.started {
		return 0
	}
	delay := uint64(0)
	if item >= 0 {
		delay = uint64(item+1) * StaggerTicks
	}
	if v.tick < r.start {
		return 0
	}
	elapsed := v.tick - r.start
	if elapsed < delay {
		return 0
	}
	return min(float64(elapsed-delay)/RevealTicks, 1)
}
