package content

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/folio/render"
)

// LineKind tags a laid-out line for styling
type LineKind int

const (
	KindBlank LineKind = iota
	KindName
	KindTitle
	KindNav
	KindHeading
	KindText
	KindItem
	KindItemText
	KindField
	KindLink
	KindFooter
)

// Line is one row of laid-out content
// Section is -1 for header and footer; Item is -1 for section-level rows
type Line struct {
	Text    string
	Kind    LineKind
	Color   render.RGB
	Section int
	Item    int
}

// Text colors
var (
	colorName    = render.RGBWhite
	colorTitle   = render.Hex(0x8fb8ff)
	colorNav     = render.Hex(0x00aaff)
	colorHeading = render.Hex(0x61dafb)
	colorText    = render.Hex(0xc8d0e0)
	colorMuted   = render.Hex(0x7a8499)
)

// Layout flows the document into lines no wider than width cells
func Layout(d *Document, width int) []Line {
	width = max(width, 8)
	var out []Line

	add := func(text string, kind LineKind, color render.RGB, section, item int) {
		out = append(out, Line{Text: text, Kind: kind, Color: color, Section: section, Item: item})
	}
	blank := func(section int) {
		add("", KindBlank, colorText, section, -1)
	}
	para := func(text string, kind LineKind, color render.RGB, section, item int, indent string) {
		for _, l := range Wrap(text, width-runewidth.StringWidth(indent)) {
			add(indent+l, kind, color, section, item)
		}
	}

	// Header
	para(d.Header.Name, KindName, colorName, -1, -1, "")
	para(d.Header.Title, KindTitle, colorTitle, -1, -1, "")
	if len(d.Header.Nav) > 0 {
		para(strings.Join(d.Header.Nav, "  ·  "), KindNav, colorNav, -1, -1, "")
	}

	for si, s := range d.Sections {
		blank(si)
		para(s.Title, KindHeading, colorHeading, si, -1, "")
		for _, b := range s.Body {
			para(b, KindText, colorText, si, -1, "")
		}
		for ii, it := range s.Items {
			head := it.Title
			if it.Icon != "" {
				head = it.Icon + "  " + it.Title
			}
			para(head, KindItem, it.RGB(), si, ii, "  ")
			if it.Body != "" {
				para(it.Body, KindItemText, colorText, si, ii, "    ")
			}
		}
		for _, f := range s.Fields {
			para("[ "+f+" ]", KindField, colorMuted, si, -1, "  ")
		}
		for _, l := range s.Links {
			para(l.Label+"  "+l.URL, KindLink, colorNav, si, -1, "  ")
		}
	}

	if d.Footer != "" {
		blank(-1)
		para(d.Footer, KindFooter, colorMuted, -1, -1, "")
	}
	return out
}

// Wrap breaks text on spaces into lines of at most width cells
// Words wider than width are hard-split by cell width
func Wrap(text string, width int) []string {
	width = max(width, 1)
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, w := range words {
		ww := runewidth.StringWidth(w)
		for ww > width {
			if curW > 0 {
				flush()
			}
			head := runewidth.Truncate(w, width, "")
			if head == "" {
				// Single rune wider than the line
				head = string([]rune(w)[:1])
			}
			lines = append(lines, head)
			w = w[len(head):]
			ww = runewidth.StringWidth(w)
		}
		if ww == 0 {
			continue
		}
		switch {
		case curW == 0:
			cur.WriteString(w)
			curW = ww
		case curW+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(w)
			curW += 1 + ww
		default:
			flush()
			cur.WriteString(w)
			curW = ww
		}
	}
	if curW > 0 {
		flush()
	}
	return lines
}
