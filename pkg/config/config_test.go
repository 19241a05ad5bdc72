package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "NOT_FOUND_MODE", "NOT_FOUND_NAVIGATOR", "CONTACT_DEDUPE_TTL", "SITE_BASE_URL"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, NotFoundModePage, cfg.NotFoundMode)
	assert.Equal(t, NavigatorMeta, cfg.NotFoundNavigator)
	assert.Equal(t, 5*time.Minute, cfg.ContactDedupeTTL)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NOT_FOUND_MODE", "Redirect")
	t.Setenv("NOT_FOUND_NAVIGATOR", "script")
	t.Setenv("CONTACT_DEDUPE_TTL", "30s")
	t.Setenv("SITE_BASE_URL", "https://example.com/")
	t.Setenv("CONTENT_WATCH", "yes")

	cfg := FromEnv()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, NotFoundModeRedirect, cfg.NotFoundMode)
	assert.Equal(t, NavigatorScript, cfg.NotFoundNavigator)
	assert.Equal(t, 30*time.Second, cfg.ContactDedupeTTL)
	assert.Equal(t, "https://example.com", cfg.SiteBaseURL)
	assert.True(t, cfg.ContentWatch)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_BadValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("CONTACT_DEDUPE_TTL", "soon")

	cfg := FromEnv()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.ContactDedupeTTL)
}

func TestValidate(t *testing.T) {
	base := Config{Port: 8080, NotFoundMode: NotFoundModePage, NotFoundNavigator: NavigatorMeta, ContactDedupeTTL: time.Minute}
	require.NoError(t, base.Validate())

	bad := base
	bad.NotFoundMode = "bounce"
	assert.ErrorContains(t, bad.Validate(), "NOT_FOUND_MODE")

	bad = base
	bad.NotFoundNavigator = "carrier-pigeon"
	assert.ErrorContains(t, bad.Validate(), "NOT_FOUND_NAVIGATOR")

	bad = base
	bad.Port = 0
	assert.ErrorContains(t, bad.Validate(), "PORT")

	bad = base
	bad.ContactDedupeTTL = 0
	assert.ErrorContains(t, bad.Validate(), "CONTACT_DEDUPE_TTL")
}

func TestBoolFromEnv(t *testing.T) {
	t.Setenv("FLAG", "off")
	assert.False(t, boolFromEnv("FLAG", true))
	t.Setenv("FLAG", "maybe")
	assert.True(t, boolFromEnv("FLAG", true))
	t.Setenv("FLAG", "")
	assert.False(t, boolFromEnv("FLAG", false))
}
