package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefault_IsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.NotEmpty(t, s.TechStack.Items)
	assert.NotEmpty(t, s.FAQ.Questions)
	assert.False(t, s.Widget.Enabled())
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	p := writeFile(t, `
name: Acme Digital
hero:
  headline: Hello from Acme
faq:
  questions:
    - question: Is it fast?
      answer: Very.
widget:
  agent_id: agent_123
  init:
    theme: dark
    variant:
      size: compact
`)
	s, err := Load(p)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "Acme Digital", s.Name)
	assert.Equal(t, "Hello from Acme", s.Hero.Headline)
	assert.Equal(t, def.Hero.Subheadline, s.Hero.Subheadline, "omitted keys keep defaults")
	assert.Equal(t, def.Services, s.Services)
	require.Len(t, s.FAQ.Questions, 1)
	assert.Equal(t, "Very.", s.FAQ.Questions[0].Answer)

	assert.True(t, s.Widget.Enabled())
	assert.Equal(t, "dark", s.Widget.Init["theme"])
	assert.Contains(t, s.Widget.Init, "variant")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeFile(t, "name: [unterminated")
	_, err := Load(p)
	assert.ErrorContains(t, err, "parse")
}

func TestLoad_RejectsInvalidContent(t *testing.T) {
	_, err := Load(writeFile(t, `name: ""`))
	assert.ErrorContains(t, err, "site name")

	_, err = Load(writeFile(t, "contact:\n  email: not-an-address\n"))
	assert.ErrorContains(t, err, "contact email")
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	s, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestWithWidget(t *testing.T) {
	s := Default().WithWidget("", "https://cdn.example/a.js")
	assert.False(t, s.Widget.Enabled())
	assert.Equal(t, "https://cdn.example/a.js", s.Widget.ScriptURL)

	s.Widget.ScriptURL = "https://cdn.example/own.js"
	s = s.WithWidget("agent_1", "https://cdn.example/a.js")
	assert.Equal(t, "agent_1", s.Widget.AgentID)
	assert.Equal(t, "https://cdn.example/own.js", s.Widget.ScriptURL, "content wins over the default script")
}
