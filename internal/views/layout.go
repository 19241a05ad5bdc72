// Package views renders the site's pages as templ components.
package views

import (
	"strconv"
	"time"

	"github.com/samber/lo"

	"landing/internal/content"
)

const stylesheetPath = "/static/css/site.css"

// now dates the footer; tests pin it.
var now = time.Now

type PageMeta struct {
	Title       string
	Description string
	// Canonical is an absolute URL; empty omits the link tag.
	Canonical string
}

func (m PageMeta) title(site content.Site) string {
	return lo.Ternary(m.Title == "", site.Name, m.Title)
}

func (m PageMeta) description(site content.Site) string {
	return lo.Ternary(m.Description == "", site.Description, m.Description)
}

type navLink struct {
	Section string
	Label   string
}

var navLinks = []navLink{
	{Section: "services", Label: "Services"},
	{Section: "industries", Label: "Industries"},
	{Section: "about", Label: "About"},
	{Section: "faq", Label: "FAQ"},
	{Section: "contact", Label: "Contact"},
}

func footerLine(site content.Site, year int) string {
	line := "© " + strconv.Itoa(year) + " " + site.Name
	if site.Tagline != "" {
		line += " · " + site.Tagline
	}
	return line
}
