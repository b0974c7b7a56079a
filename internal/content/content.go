// Package content holds the portfolio data the page renders, along
// with the validation run at startup.
package content

import "fmt"

// Profile is the identity block behind the hero section.
type Profile struct {
	Name     string
	Tagline  string
	Roles    []string // cycled by the typed headline
	Location string
	Email    string
}

// Link is a labelled external URL.
type Link struct {
	Label string
	URL   string
}

// Fact is one row of the quick-facts list in the about section.
type Fact struct {
	Label string
	Value string
}

// Counter is an animated statistic, counted up from zero on reveal.
type Counter struct {
	Label string
	Value int
}

// Skill is a named proficiency shown as a horizontal bar.
type Skill struct {
	Name  string
	Level int // percent, 0 to 100
}

// Language is a named proficiency shown as a circular ring.
type Language struct {
	Name  string
	Level int // percent, 0 to 100
}

// TimelineEntry is one dated item in the education, experience and
// volunteering timelines.
type TimelineEntry struct {
	Title string
	Org   string
	Span  string
	Notes []string
}

// Service is one offering in the services grid.
type Service struct {
	Name string
	Desc string
	Art  string // thumbnail asset name
}

// Project is one portfolio piece.
type Project struct {
	Name string
	Desc string
	Tags []string
	URL  string
}

// About is the introduction block.
type About struct {
	Paragraphs []string
	Facts      []Fact
}

// Contact is the closing call-to-action block.
type Contact struct {
	Blurb string
	Email string
	Links []Link
}

// Page is the complete portfolio content.
type Page struct {
	Profile    Profile
	About      About
	Counters   []Counter
	Skills     []Skill
	Education  []TimelineEntry
	Experience []TimelineEntry
	Services   []Service
	Projects   []Project
	Volunteer  []TimelineEntry
	Languages  []Language
	Contact    Contact
}

// Validate reports the first problem with the page content. The
// renderers trust validated content, so this runs before the program
// draws anything.
func (p Page) Validate() error {
	if p.Profile.Name == "" {
		return fmt.Errorf("profile: name is empty")
	}
	if len(p.Profile.Roles) == 0 {
		return fmt.Errorf("profile: no roles for the typed headline")
	}
	for i, r := range p.Profile.Roles {
		if r == "" {
			return fmt.Errorf("profile: role %d is empty", i)
		}
	}
	if err := checkSkills(p.Skills); err != nil {
		return err
	}
	if err := checkLanguages(p.Languages); err != nil {
		return err
	}
	for _, c := range p.Counters {
		if c.Value < 0 {
			return fmt.Errorf("counter %q: negative value %d", c.Label, c.Value)
		}
	}
	for i, s := range p.Services {
		if s.Name == "" {
			return fmt.Errorf("service %d: name is empty", i)
		}
	}
	return nil
}

func checkSkills(skills []Skill) error {
	for _, s := range skills {
		if s.Name == "" {
			return fmt.Errorf("skill: name is empty")
		}
		if !levelInRange(s.Level) {
			return fmt.Errorf("skill %q: level %d out of range", s.Name, s.Level)
		}
	}
	return nil
}

func checkLanguages(langs []Language) error {
	for _, l := range langs {
		if l.Name == "" {
			return fmt.Errorf("language: name is empty")
		}
		if !levelInRange(l.Level) {
			return fmt.Errorf("language %q: level %d out of range", l.Name, l.Level)
		}
	}
	return nil
}

// levelInRange bounds the percent scales driven into bars and rings.
func levelInRange(n int) bool {
	return n >= 0 && n <= 100
}
