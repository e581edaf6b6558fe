package cache

// ScopedKeyer prefixes every generated key. The server scopes keys by a
// hash of the repository root so cached responses from different
// repositories sharing one Redis instance never cross.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps a keyer with a prefix. A nil inner keyer defaults
// to the standard one.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ResolveKey(coordinate string, opts ResolveKeyOpts) string {
	return k.prefix + k.inner.ResolveKey(coordinate, opts)
}

func (k *ScopedKeyer) TreeKey(coordinate string, maxDepth int) string {
	return k.prefix + k.inner.TreeKey(coordinate, maxDepth)
}

func (k *ScopedKeyer) VersionsKey(group, artifact, sort string) string {
	return k.prefix + k.inner.VersionsKey(group, artifact, sort)
}

func (k *ScopedKeyer) DependentsKey(group, artifact, version string, limit int) string {
	return k.prefix + k.inner.DependentsKey(group, artifact, version, limit)
}
