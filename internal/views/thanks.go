package views

import (
	"github.com/a-h/templ"

	"landing/internal/content"
)

// ThanksPage confirms a contact form submission.
func ThanksPage(site content.Site) templ.Component {
	return Page(site, PageMeta{Title: "Message received | " + site.Name}, noindex(), thanksBody())
}
