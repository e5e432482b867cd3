// Package content loads the copy, links and asset paths the page renders.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fremyrosso/site/internal/nav"
)

//go:embed site.yaml
var defaultSite []byte

type Metadata struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Hero struct {
	Headline    []string `yaml:"headline"`
	Tagline     string   `yaml:"tagline"`
	Headshot    string   `yaml:"headshot"`
	HeadshotAlt string   `yaml:"headshot_alt"`
	Video       string   `yaml:"video"`
}

// Card is an icon, a title and a short description.
type Card struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// About body paragraphs are markdown.
type About struct {
	Title      string   `yaml:"title"`
	Lead       string   `yaml:"lead"`
	Body       []string `yaml:"body"`
	Highlights []Card   `yaml:"highlights"`
}

type Expertise struct {
	Title string `yaml:"title"`
	Intro string `yaml:"intro"`
	Cards []Card `yaml:"cards"`
}

type Venture struct {
	Image       string `yaml:"image"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Button      string `yaml:"button"`
	ComingSoon  bool   `yaml:"coming_soon"`
}

type Ventures struct {
	Title string    `yaml:"title"`
	Intro string    `yaml:"intro"`
	Items []Venture `yaml:"items"`
}

// ContactLink renders as a link when Href is set and as plain text otherwise.
type ContactLink struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Href  string `yaml:"href"`
}

type Contact struct {
	Title string        `yaml:"title"`
	Intro string        `yaml:"intro"`
	Links []ContactLink `yaml:"links"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Site is everything the page needs, already resolved.
type Site struct {
	Owner     string       `yaml:"owner"`
	Metadata  Metadata     `yaml:"metadata"`
	Sections  []string     `yaml:"sections"`
	Hero      Hero         `yaml:"hero"`
	About     About        `yaml:"about"`
	Expertise Expertise    `yaml:"expertise"`
	Ventures  Ventures     `yaml:"ventures"`
	Contact   Contact      `yaml:"contact"`
	Social    []SocialLink `yaml:"social"`

	enabled map[nav.Section]bool
}

// Default returns the embedded site content.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Load reads site content from path. An empty path loads the embedded
// default.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Parse decodes YAML site content. A missing sections list enables every
// section.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if s.Owner == "" {
		return nil, fmt.Errorf("parsing content: owner is required")
	}

	s.enabled = make(map[nav.Section]bool)
	if len(s.Sections) == 0 {
		for _, sec := range nav.Sections() {
			s.enabled[sec] = true
		}
		return &s, nil
	}
	for _, id := range s.Sections {
		sec, ok := nav.ParseSection(id)
		if !ok {
			return nil, fmt.Errorf("parsing content: unknown section %q", id)
		}
		s.enabled[sec] = true
	}
	return &s, nil
}

// Enabled reports whether section sec is rendered on the page.
func (s *Site) Enabled(sec nav.Section) bool {
	return s.enabled[sec]
}

// EnabledSections lists rendered sections in page order.
func (s *Site) EnabledSections() []nav.Section {
	var out []nav.Section
	for _, sec := range nav.Sections() {
		if s.enabled[sec] {
			out = append(out, sec)
		}
	}
	return out
}
