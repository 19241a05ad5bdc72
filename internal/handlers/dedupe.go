package handlers

import (
	"sync"
	"time"
)

// dedupeKey is a composite identifier for a repeated submission
type dedupeKey struct {
	Source     string
	Subject    string
	PayloadSum string
}

type entry struct {
	expiresAt time.Time
}

// Deduper is an in-memory TTL store for repeated request detection.
type Deduper struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[dedupeKey]entry
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

func NewDeduper(ttl time.Duration) *Deduper {
	d := &Deduper{
		ttl:   ttl,
		items: make(map[dedupeKey]entry, 256),
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go d.gc()
	return d
}

// CheckAndMark returns true if the key is seen within TTL, else marks it and returns false.
func (d *Deduper) CheckAndMark(source, subject, payloadSum string) bool {
	if d == nil {
		return false
	}
	k := dedupeKey{Source: source, Subject: subject, PayloadSum: payloadSum}
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	if e, ok := d.items[k]; ok && e.expiresAt.After(now) {
		return true
	}
	d.items[k] = entry{expiresAt: now.Add(d.ttl)}
	return false
}

// Forget drops a key so a failed request can be retried immediately.
func (d *Deduper) Forget(source, subject, payloadSum string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	delete(d.items, dedupeKey{Source: source, Subject: subject, PayloadSum: payloadSum})
	d.mu.Unlock()
}

// Stop ends the background sweep.
func (d *Deduper) Stop() {
	if d == nil {
		return
	}
	d.once.Do(func() { close(d.stop) })
}

func (d *Deduper) gc() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			d.sweep()
		}
	}
}

func (d *Deduper) sweep() {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	for k, e := range d.items {
		if !e.expiresAt.After(now) {
			delete(d.items, k)
		}
	}
}
