//go:build !windows

package registry

// NewSystemStore fails on non-Windows platforms; callers fall back to a
// MemoryStore or surface the error.
func NewSystemStore() (Store, error) {
	return nil, ErrUnsupported
}
