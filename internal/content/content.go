// Package content holds the static records the portfolio renders: profile,
// navigation, services, skills, experience and projects.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultYAML []byte

// Portfolio is everything the portfolio shows.
type Portfolio struct {
	Profile      Profile      `yaml:"profile"`
	NavLinks     []NavLink    `yaml:"nav_links"`
	Services     []Service    `yaml:"services"`
	Technologies []Technology `yaml:"technologies"`
	Experiences  []Experience `yaml:"experiences"`
	Projects     []Project    `yaml:"projects"`
}

// Profile is the owner of the portfolio.
type Profile struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Tagline  string `yaml:"tagline"`
	Location string `yaml:"location"`
	About    string `yaml:"about"`
	Links    []Link `yaml:"links"`
}

// Link is an external link.
type Link struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// NavLink is a navigation entry pointing at a section id.
type NavLink struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// Service is one of the "what I do" cards.
type Service struct {
	Title       string `yaml:"title"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// Technology is a skill shown in the tech grid.
type Technology struct {
	Name string `yaml:"name"`
}

// Experience is one entry in the timeline.
type Experience struct {
	Title   string   `yaml:"title"`
	Company string   `yaml:"company"`
	Date    string   `yaml:"date"`
	Points  []string `yaml:"points"`
}

// Project is a card in the works gallery.
type Project struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	SourceURL   string `yaml:"source_url"`
	Tags        []Tag  `yaml:"tags"`
}

// Tag labels a project. Color names a gradient family such as "blue-text-gradient".
type Tag struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// ErrInvalid is returned when a portfolio fails validation.
var ErrInvalid = errors.New("invalid portfolio")

// Default returns the built-in portfolio.
func Default() Portfolio {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: built-in portfolio: %v", err))
	}
	return p
}

// Parse decodes and validates a YAML portfolio.
func Parse(data []byte) (Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Portfolio{}, fmt.Errorf("parse portfolio: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

// Load reads a portfolio from a YAML file.
func Load(path string) (Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("read portfolio: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault loads path, falling back to the built-in portfolio when path
// is empty or cannot be loaded.
func LoadOrDefault(path string) Portfolio {
	if path == "" {
		return Default()
	}
	p, err := Load(path)
	if err != nil {
		log.Printf("content: using built-in portfolio: %v", err)
		return Default()
	}
	return p
}

// Validate checks the invariants the views rely on.
func (p Portfolio) Validate() error {
	if strings.TrimSpace(p.Profile.Name) == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalid)
	}
	seen := make(map[string]bool, len(p.NavLinks))
	for _, l := range p.NavLinks {
		if l.ID == "" {
			return fmt.Errorf("%w: nav link %q has no id", ErrInvalid, l.Title)
		}
		if seen[l.ID] {
			return fmt.Errorf("%w: duplicate nav link id %q", ErrInvalid, l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}
