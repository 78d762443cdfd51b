// Package site holds the static site content and the small behaviours the
// marketing pages apply to it: active navigation, service filters, collapsible
// panels and in-page anchors.
package site

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Panel groups.
const (
	GroupService = "service"
	GroupPricing = "pricing"
)

var (
	// ErrUnknownGroup is returned when a panel group is not defined in the content.
	ErrUnknownGroup = errors.New("unknown panel group")
	// ErrInvalidContent is returned when the content file fails validation.
	ErrInvalidContent = errors.New("invalid site content")
)

// NavLink is a top-level navigation entry.
type NavLink struct {
	Href     string `yaml:"href" json:"href"`
	LabelKey string `yaml:"label_key" json:"label_key"`
	Label    string `yaml:"label" json:"label"`
}

// Filter is a service filter button.
type Filter struct {
	Key      string `yaml:"key" json:"key"`
	LabelKey string `yaml:"label_key" json:"label_key"`
	Label    string `yaml:"label" json:"label"`
}

// ServiceCard is one entry of the services grid.
type ServiceCard struct {
	ID         string `yaml:"id" json:"id"`
	Title      string `yaml:"title" json:"title"`
	Summary    string `yaml:"summary" json:"summary"`
	Categories string `yaml:"categories" json:"categories"`
}

// CategoryList splits the card's categories on whitespace.
func (s ServiceCard) CategoryList() []string {
	return strings.Fields(s.Categories)
}

// Panel is a collapsible section of a panel group.
type Panel struct {
	Key   string `yaml:"key" json:"key"`
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}

// Content is the parsed site content.
type Content struct {
	Nav      []NavLink          `yaml:"nav"`
	Filters  []Filter           `yaml:"filters"`
	Services []ServiceCard      `yaml:"services"`
	Panels   map[string][]Panel `yaml:"panels"`
}

// Load reads site content from path, or the embedded default when path is empty.
func Load(path string) (*Content, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Parse(defaultContent)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site content %s: %w", path, err)
	}
	content, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return content, nil
}

// Default returns the embedded content.
func Default() *Content {
	content, err := Parse(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("embedded site content: %v", err))
	}
	return content
}

// Parse decodes and validates YAML site content. Unknown keys are rejected.
func Parse(data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var content Content
	if err := dec.Decode(&content); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if err := content.validate(); err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *Content) validate() error {
	for i, link := range c.Nav {
		if strings.TrimSpace(link.Href) == "" {
			return fmt.Errorf("%w: nav[%d] has no href", ErrInvalidContent, i)
		}
	}

	seen := make(map[string]bool, len(c.Filters))
	for i, f := range c.Filters {
		if f.Key == "" {
			return fmt.Errorf("%w: filters[%d] has no key", ErrInvalidContent, i)
		}
		if seen[f.Key] {
			return fmt.Errorf("%w: duplicate filter %q", ErrInvalidContent, f.Key)
		}
		seen[f.Key] = true
	}

	for group, panels := range c.Panels {
		keys := make(map[string]bool, len(panels))
		for i, p := range panels {
			if p.Key == "" {
				return fmt.Errorf("%w: panels.%s[%d] has no key", ErrInvalidContent, group, i)
			}
			if keys[p.Key] {
				return fmt.Errorf("%w: duplicate panel %s-%s", ErrInvalidContent, group, p.Key)
			}
			keys[p.Key] = true
		}
	}
	return nil
}

// PanelGroup returns the panels of a group.
func (c *Content) PanelGroup(group string) ([]Panel, error) {
	panels, ok := c.Panels[group]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}
	return panels, nil
}
