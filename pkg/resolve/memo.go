package resolve

import (
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dkrasnow/m2scope/pkg/pom"
)

// memo is a bounded, thread-safe, read-through cache of parsed descriptors,
// keyed by path and invalidated on mtime change. Cached projects are shared
// across calls and must be treated as read-only.
type memo struct {
	entries *lru.Cache[string, memoEntry]
}

type memoEntry struct {
	proj  *pom.Project
	mtime time.Time
}

func newMemo(size int) (*memo, error) {
	entries, err := lru.New[string, memoEntry](size)
	if err != nil {
		return nil, err
	}
	return &memo{entries: entries}, nil
}

func (m *memo) get(path string) (*pom.Project, bool) {
	entry, ok := m.entries.Get(path)
	if !ok {
		return nil, false
	}
	info, err := os.Stat(path)
	if err != nil || !info.ModTime().Equal(entry.mtime) {
		m.entries.Remove(path)
		return nil, false
	}
	return entry.proj, true
}

func (m *memo) put(path string, proj *pom.Project) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	m.entries.Add(path, memoEntry{proj: proj, mtime: info.ModTime()})
}
