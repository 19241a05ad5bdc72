package content

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(p, []byte("name: First\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	var (
		mu     sync.Mutex
		names  []string
		errs   []error
		doneCh = make(chan error, 1)
	)
	go func() {
		doneCh <- Watch(ctx, p, 20*time.Millisecond,
			func(s Site) { mu.Lock(); names = append(names, s.Name); mu.Unlock() },
			func(err error) { mu.Lock(); errs = append(errs, err); mu.Unlock() },
		)
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(p, []byte("name: Second\n"), 0o600))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(names) > 0 && names[len(names)-1] == "Second"
	}, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(p, []byte("name: ''\n"), 0o600))
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(errs) > 0
	}, 3*time.Second, 20*time.Millisecond)

	mu.Lock()
	assert.NotContains(t, names, "", "invalid content is not delivered")
	mu.Unlock()

	cancel()
	select {
	case err := <-doneCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "site.yaml"), time.Millisecond, nil, nil)
	assert.Error(t, err)
}
