package content

import (
	_ "embed"
	"errors"
	"fmt"
	"log"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
)

//go:embed default.toml
var defaultDocument []byte

// ErrNoSections is returned for a document without any section
var ErrNoSections = errors.New("document has no sections")

// Header is the page title block with its navigation anchors
type Header struct {
	Name  string   `toml:"name"`
	Title string   `toml:"title"`
	Nav   []string `toml:"nav"`
}

// Item is a staggered child of a section: a skill tile or a project card
type Item struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
	Icon  string `toml:"icon"`
	Color string `toml:"color"`
	Link  string `toml:"link"`

	color render.RGB
}

// RGB returns the parsed item color
func (it Item) RGB() render.RGB {
	return it.color
}

// Link is a social link in the contact section
type Link struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

// Section is one revealable block of the page
type Section struct {
	ID     string   `toml:"id"`
	Title  string   `toml:"title"`
	Body   []string `toml:"body"`
	Items  []Item   `toml:"items"`
	Fields []string `toml:"fields"`
	Links  []Link   `toml:"links"`
}

// Document is the static page content layered over the scene
type Document struct {
	Header   Header    `toml:"header"`
	Sections []Section `toml:"section"`
	Footer   string    `toml:"footer"`
}

// Default decodes the embedded document
func Default() (*Document, error) {
	var d Document
	if _, err := toml.Decode(string(defaultDocument), &d); err != nil {
		return nil, fmt.Errorf("decode embedded content: %w", err)
	}
	if err := d.prepare(); err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return &d, nil
}

// Load decodes a document from a TOML file; an empty path yields the default
func Load(path string) (*Document, error) {
	if path == "" {
		return Default()
	}
	var d Document
	md, err := toml.DecodeFile(path, &d)
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Printf("content %s: ignoring unknown keys %v", path, undecoded)
	}
	if err := d.prepare(); err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	log.Printf("Loaded content from %s: %d sections", path, len(d.Sections))
	return &d, nil
}

// prepare validates the document and parses item colors
func (d *Document) prepare() error {
	if len(d.Sections) == 0 {
		return ErrNoSections
	}
	seen := make(map[string]bool, len(d.Sections))
	for si := range d.Sections {
		s := &d.Sections[si]
		if s.ID == "" {
			return fmt.Errorf("section %d: missing id", si)
		}
		if seen[s.ID] {
			return fmt.Errorf("section %q: duplicate id", s.ID)
		}
		seen[s.ID] = true

		for ii := range s.Items {
			it := &s.Items[ii]
			if it.Color == "" {
				it.color = render.RGBWhite
				continue
			}
			c, err := render.ParseHex(it.Color)
			if err != nil {
				return fmt.Errorf("section %q item %d: %w", s.ID, ii, err)
			}
			it.color = c
		}
	}
	return nil
}

// Section returns the section with the given id
func (d *Document) Section(id string) (*Section, bool) {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

// AttachSkills lists the scene's skills as items of the "skills" section,
// replacing any items it already has
func (d *Document) AttachSkills(skills []scene.Skill) {
	s, ok := d.Section("skills")
	if !ok {
		return
	}
	s.Items = s.Items[:0]
	for _, sk := range skills {
		s.Items = append(s.Items, Item{
			Title: sk.Name,
			Icon:  sk.Icon,
			Color: sk.Color.Hex(),
			color: sk.Color,
		})
	}
}
