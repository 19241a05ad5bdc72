package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeduper_CheckAndMark(t *testing.T) {
	d := NewDeduper(time.Minute)
	defer d.Stop()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	assert.False(t, d.CheckAndMark("contact", "a@example.com", "sum"))
	assert.True(t, d.CheckAndMark("contact", "a@example.com", "sum"))
	assert.False(t, d.CheckAndMark("contact", "b@example.com", "sum"))

	now = now.Add(2 * time.Minute)
	assert.False(t, d.CheckAndMark("contact", "a@example.com", "sum"), "expired keys are accepted again")
}

func TestDeduper_ForgetAndSweep(t *testing.T) {
	d := NewDeduper(time.Minute)
	defer d.Stop()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	d.CheckAndMark("contact", "a", "1")
	d.Forget("contact", "a", "1")
	assert.False(t, d.CheckAndMark("contact", "a", "1"))

	d.CheckAndMark("contact", "b", "2")
	now = now.Add(time.Hour)
	d.sweep()
	d.mu.Lock()
	assert.Empty(t, d.items)
	d.mu.Unlock()
}

func TestDeduper_NilSafe(t *testing.T) {
	var d *Deduper
	assert.False(t, d.CheckAndMark("x", "y", "z"))
	d.Forget("x", "y", "z")
	d.Stop()
}
