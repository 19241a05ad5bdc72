// Package content holds the copy rendered by the marketing sections.
package content

import (
	"fmt"
	"net/mail"
	"strings"
)

type Site struct {
	Name        string     `yaml:"name"`
	Tagline     string     `yaml:"tagline"`
	Description string     `yaml:"description"`
	Hero        Hero       `yaml:"hero"`
	TechStack   TechStack  `yaml:"tech_stack"`
	About       About      `yaml:"about"`
	Industries  Industries `yaml:"industries"`
	Services    Services   `yaml:"services"`
	FAQ         FAQ        `yaml:"faq"`
	Contact     Contact    `yaml:"contact"`
	Widget      Widget     `yaml:"widget"`
}

type Hero struct {
	Eyebrow      string `yaml:"eyebrow"`
	Headline     string `yaml:"headline"`
	Subheadline  string `yaml:"subheadline"`
	PrimaryCTA   Link   `yaml:"primary_cta"`
	SecondaryCTA Link   `yaml:"secondary_cta"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type TechStack struct {
	Title string `yaml:"title"`
	Intro string `yaml:"intro"`
	Items []Tech `yaml:"items"`
}

type Tech struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type About struct {
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
	Stats      []Stat   `yaml:"stats"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Industries struct {
	Title string     `yaml:"title"`
	Intro string     `yaml:"intro"`
	Items []Industry `yaml:"items"`
}

type Industry struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"`
}

type Services struct {
	Title string    `yaml:"title"`
	Intro string    `yaml:"intro"`
	Items []Service `yaml:"items"`
}

type Service struct {
	Name       string   `yaml:"name"`
	Summary    string   `yaml:"summary"`
	Highlights []string `yaml:"highlights"`
}

type FAQ struct {
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

type Question struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Contact struct {
	Title    string `yaml:"title"`
	Intro    string `yaml:"intro"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
	// FormAction is where the contact form posts; empty hides the form.
	FormAction string `yaml:"form_action"`
}

// Widget configures the embeddable ElevenLabs ConvAI element. Init is passed
// through to the widget script untouched.
type Widget struct {
	AgentID   string         `yaml:"agent_id"`
	ScriptURL string         `yaml:"script_url"`
	Init      map[string]any `yaml:"init"`
}

func (w Widget) Enabled() bool {
	return strings.TrimSpace(w.AgentID) != ""
}

// WithWidget overrides the agent id when agentID is set and fills in the
// script URL when the content leaves it empty.
func (s Site) WithWidget(agentID, scriptURL string) Site {
	if agentID != "" {
		s.Widget.AgentID = agentID
	}
	if s.Widget.ScriptURL == "" {
		s.Widget.ScriptURL = scriptURL
	}
	return s
}

// Validate checks the few fields the pages cannot do without.
func (s Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("content: site name is required")
	}
	if s.Contact.Email != "" {
		if _, err := mail.ParseAddress(s.Contact.Email); err != nil {
			return fmt.Errorf("content: contact email %q: %w", s.Contact.Email, err)
		}
	}
	return nil
}
