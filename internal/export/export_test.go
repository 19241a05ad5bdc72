package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing/internal/content"
	"landing/internal/views"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	site := content.Default()

	files, err := Write(context.Background(), dir, site, Options{
		BaseURL:   "https://northwind.example",
		Navigator: views.MetaRefresh{},
	})
	require.NoError(t, err)
	assert.Contains(t, files, "index.html")
	assert.Contains(t, files, "404.html")
	assert.Contains(t, files, filepath.Join("contact", "thanks", "index.html"))
	assert.Contains(t, files, filepath.Join("static", "css", "site.css"))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, views.HomePage(site, "https://northwind.example/").Render(context.Background(), &want))
	assert.Equal(t, want.String(), string(index))

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "Redirecting...")
	assert.Equal(t, 1, bytes.Count(notFound, []byte(`http-equiv="refresh"`)))

	_, err = os.Stat(filepath.Join(dir, "static", "css", "site.css"))
	assert.NoError(t, err)
}

func TestWrite_NoNavigator(t *testing.T) {
	dir := t.TempDir()
	_, err := Write(context.Background(), dir, content.Default(), Options{})
	require.NoError(t, err)

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(notFound), "refresh")
}
