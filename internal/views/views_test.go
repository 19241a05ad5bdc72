package views

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing/internal/content"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

// recordingNavigator logs every navigation request.
type recordingNavigator struct {
	calls []string
}

func (r *recordingNavigator) Navigate(path string) templ.Component {
	r.calls = append(r.calls, path)
	return templ.Raw(`<meta name="x-navigate">`)
}

func TestNotFound_NavigatesOnceToRoot(t *testing.T) {
	nav := &recordingNavigator{}
	out := render(t, NotFound(nav))

	assert.Equal(t, []string{"/"}, nav.calls)
	assert.Equal(t, 1, strings.Count(out, `<meta name="x-navigate">`))
	assert.Contains(t, out, "Redirecting...")
	assert.Contains(t, out, "Taking you back to the home page")
}

func TestNotFound_DirectiveInHeadBeforePlaceholder(t *testing.T) {
	out := render(t, NotFound(MetaRefresh{}))

	directive := strings.Index(out, `http-equiv="refresh"`)
	headEnd := strings.Index(out, "</head>")
	placeholder := strings.Index(out, "Taking you back")
	require.NotEqual(t, -1, directive)
	assert.Less(t, directive, headEnd)
	assert.Less(t, headEnd, placeholder)
}

func TestNotFound_EachRenderHasExactlyOneDirective(t *testing.T) {
	page := NotFound(MetaRefresh{})
	for i := 0; i < 3; i++ {
		out := render(t, page)
		assert.Equal(t, 1, strings.Count(out, `http-equiv="refresh"`))
	}
}

func TestNotFound_NilNavigatorRendersPlaceholderOnly(t *testing.T) {
	out := render(t, NotFound(nil))
	assert.Contains(t, out, "Redirecting...")
	assert.NotContains(t, out, "refresh")
	assert.NotContains(t, out, "location.replace")
}

func TestNavigators(t *testing.T) {
	meta := render(t, MetaRefresh{}.Navigate(RedirectTarget))
	assert.Equal(t, `<meta http-equiv="refresh" content="0; url=/">`, meta)

	script := render(t, ScriptReplace{}.Navigate(RedirectTarget))
	assert.Equal(t, `<script data-target="/">window.location.replace(document.currentScript.dataset.target);</script>`, script)

	assert.Contains(t, render(t, ScriptReplace{}.Navigate("javascript:alert(1)")), `data-target="about:invalid#TemplFailedSanitizationURL"`)

	assert.IsType(t, MetaRefresh{}, NavigatorFor("meta"))
	assert.IsType(t, MetaRefresh{}, NavigatorFor(""))
	assert.IsType(t, ScriptReplace{}, NavigatorFor("script"))
}

func sectionPositions(t *testing.T, out string) []int {
	t.Helper()
	pos := make([]int, 0, len(SectionOrder))
	for _, name := range SectionOrder {
		marker := `data-section="` + name + `"`
		require.Equal(t, 1, strings.Count(out, marker), "section %s", name)
		pos = append(pos, strings.Index(out, marker))
	}
	return pos
}

func TestSectionOrder(t *testing.T) {
	assert.Equal(t, []string{"hero", "tech-stack", "about", "industries", "services", "faq", "contact"}, SectionOrder)
}

func TestHome_RendersSectionsInOrder(t *testing.T) {
	for name, site := range map[string]content.Site{
		"default": content.Default(),
		"empty":   {},
	} {
		t.Run(name, func(t *testing.T) {
			pos := sectionPositions(t, render(t, Home(site)))
			for i := 1; i < len(pos); i++ {
				assert.Less(t, pos[i-1], pos[i], "%s before %s", SectionOrder[i-1], SectionOrder[i])
			}
		})
	}
}

func TestHome_EscapesContent(t *testing.T) {
	site := content.Default()
	site.Hero.Headline = `<script>alert("x")</script>`
	site.Hero.PrimaryCTA.Href = "javascript:alert(1)"

	out := render(t, Home(site))
	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "javascript:alert")
}

func TestHome_ContactFormFollowsFormAction(t *testing.T) {
	site := content.Default()
	out := render(t, Home(site))
	assert.Contains(t, out, `action="/contact"`)

	site.Contact.FormAction = ""
	out = render(t, Home(site))
	assert.NotContains(t, out, "<form")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("client went away") }

func TestHome_PropagatesWriteErrors(t *testing.T) {
	err := Home(content.Default()).Render(context.Background(), failingWriter{})
	assert.EqualError(t, err, "client went away")
}

func TestHomePage_Document(t *testing.T) {
	out := render(t, HomePage(content.Default(), "https://northwind.example/"))
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Northwind Labs | Software that ships</title>")
	assert.Contains(t, out, `<link rel="canonical" href="https://northwind.example/">`)
	assert.Contains(t, out, `href="/#services"`)
	assert.Contains(t, out, `class="site-footer"`)
}

func TestConvAIWidget(t *testing.T) {
	assert.Empty(t, render(t, ConvAIWidget(content.Widget{})))

	out := render(t, ConvAIWidget(content.Widget{AgentID: "agent_42", ScriptURL: "https://cdn.example/convai.js"}))
	assert.Contains(t, out, `<elevenlabs-convai agent-id="agent_42"></elevenlabs-convai>`)
	assert.Contains(t, out, `<script src="https://cdn.example/convai.js" async type="text/javascript"></script>`)
	assert.NotContains(t, out, "c.init(")

	out = render(t, ConvAIWidget(content.Widget{
		AgentID: "agent_42",
		Init:    map[string]any{"theme": "dark", "greeting": "</script><b>hi"},
	}))
	assert.Contains(t, out, `<script id="convai-init" type="application/json">{"greeting":"\u003c/script\u003e\u003cb\u003ehi","theme":"dark"}`)
	assert.Contains(t, out, "if(c&&c.init&&d){c.init(JSON.parse(d.textContent));}")
	assert.NotContains(t, out, "</script><b>")
	assert.NotContains(t, out, "src=", "no loader without a script URL")
}

func TestConvAIWidget_DoesNotChangeOtherSections(t *testing.T) {
	plain := content.Default()
	withWidget := content.Default()
	withWidget.Widget = content.Widget{AgentID: "agent_42", Init: map[string]any{"k": 1}}

	assert.Equal(t, render(t, Home(plain)), render(t, Home(withWidget)))

	widget := render(t, ConvAIWidget(withWidget.Widget))
	require.NotEmpty(t, widget)
	for name, page := range map[string]func(content.Site) templ.Component{
		"home":   func(s content.Site) templ.Component { return HomePage(s, "") },
		"thanks": ThanksPage,
	} {
		t.Run(name, func(t *testing.T) {
			with := render(t, page(withWidget))
			require.Equal(t, 1, strings.Count(with, widget))
			assert.Equal(t, render(t, page(plain)), strings.Replace(with, widget, "", 1))
		})
	}
}

func TestPage_FooterYear(t *testing.T) {
	defer func(orig func() time.Time) { now = orig }(now)
	now = func() time.Time { return time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC) }

	out := render(t, HomePage(content.Default(), ""))
	assert.Contains(t, out, `<footer class="site-footer"><p>© 2031 Northwind Labs · Software that ships</p></footer>`)

	site := content.Default()
	site.Tagline = ""
	assert.Contains(t, render(t, ThanksPage(site)), "<p>© 2031 Northwind Labs</p>")
}

func TestPage_SanitizesCanonical(t *testing.T) {
	out := render(t, HomePage(content.Default(), "javascript:alert(1)"))
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, `<link rel="canonical" href="about:invalid#TemplFailedSanitizationURL">`)
}

func TestContactForm_RequiredFields(t *testing.T) {
	out := render(t, ContactSection(content.Default().Contact))
	assert.Contains(t, out, `<input id="contact-email" name="email" type="email" required>`)
	assert.Contains(t, out, `<input id="contact-company" name="company" type="text">`)
	assert.Contains(t, out, `<label for="contact-name">Name</label>`)
}

func TestThanksPage(t *testing.T) {
	out := render(t, ThanksPage(content.Default()))
	assert.Contains(t, out, "Thanks for reaching out")
	assert.Contains(t, out, `<meta name="robots" content="noindex">`)
}
