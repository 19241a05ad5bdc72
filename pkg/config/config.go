package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	NotFoundModePage     = "page"
	NotFoundModeRedirect = "redirect"

	NavigatorMeta   = "meta"
	NavigatorScript = "script"
)

type Config struct {
	Port        int
	DatabaseURL string
	LogLevel    string

	// Site
	ContentPath  string
	ContentWatch bool
	SiteBaseURL  string

	// Fallback for unmatched routes
	NotFoundMode      string
	NotFoundNavigator string

	// Contact form
	ContactDedupeTTL time.Duration

	// ElevenLabs ConvAI widget
	ElevenLabsAgentID   string
	ElevenLabsScriptURL string
}

func FromEnv() Config {
	cfg := Config{
		Port:        intFromEnv("PORT", 8080),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    strFromEnv("LOG_LEVEL", "info"),

		ContentPath:  os.Getenv("CONTENT_PATH"),
		ContentWatch: boolFromEnv("CONTENT_WATCH", false),
		SiteBaseURL:  strings.TrimSuffix(os.Getenv("SITE_BASE_URL"), "/"),

		NotFoundMode:      strings.ToLower(strFromEnv("NOT_FOUND_MODE", NotFoundModePage)),
		NotFoundNavigator: strings.ToLower(strFromEnv("NOT_FOUND_NAVIGATOR", NavigatorMeta)),

		ContactDedupeTTL: durationFromEnv("CONTACT_DEDUPE_TTL", 5*time.Minute),

		ElevenLabsAgentID:   os.Getenv("ELEVENLABS_AGENT_ID"),
		ElevenLabsScriptURL: strFromEnv("ELEVENLABS_SCRIPT_URL", "https://unpkg.com/@elevenlabs/convai-widget-embed"),
	}
	return cfg
}

// Validate reports settings that would leave the server in an undefined state.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if !lo.Contains([]string{NotFoundModePage, NotFoundModeRedirect}, c.NotFoundMode) {
		return fmt.Errorf("invalid NOT_FOUND_MODE %q (want %s or %s)", c.NotFoundMode, NotFoundModePage, NotFoundModeRedirect)
	}
	if !lo.Contains([]string{NavigatorMeta, NavigatorScript}, c.NotFoundNavigator) {
		return fmt.Errorf("invalid NOT_FOUND_NAVIGATOR %q (want %s or %s)", c.NotFoundNavigator, NavigatorMeta, NavigatorScript)
	}
	if c.ContactDedupeTTL <= 0 {
		return fmt.Errorf("invalid CONTACT_DEDUPE_TTL %s", c.ContactDedupeTTL)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

func intFromEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func strFromEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}

func boolFromEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "t", "true", "yes", "y", "on":
		return true
	case "0", "f", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
