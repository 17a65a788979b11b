package runner

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// Cache stores raw checker output on disk, keyed by the full command line.
// Re-running a comparison with identical arguments skips the (slow)
// checker invocation. Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema     uint16
	Tool       string
	Argv       []string
	CapturedAt time.Time
	Output     []byte
}

// OpenCache initializes the raw-output cache at the standard location
// (XDG_CACHE_HOME or ~/.cache).
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(spec Spec, targets []string) string {
	h := sha256.New()
	for _, arg := range spec.CommandLine(targets) {
		h.Write([]byte(arg))
		h.Write([]byte{0})
	}
	key := hex.EncodeToString(h.Sum(nil))
	return filepath.Join(c.dir, "raw", key+".mp")
}

// Put serializes a capture's raw output into the cache atomically.
func (c *Cache) Put(spec Spec, targets []string, output []byte) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(spec, targets)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}

	payload := cachePayload{
		Schema:     cacheSchemaVersion,
		Tool:       spec.Tool.String(),
		Argv:       spec.CommandLine(targets),
		CapturedAt: time.Now(),
		Output:     output,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a cached raw output. The second return is false on a miss or
// on a schema mismatch (stale entries are simply ignored).
func (c *Cache) Get(spec Spec, targets []string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(spec, targets))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return payload.Output, true
}
