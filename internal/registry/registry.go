// Package registry abstracts the Windows registry behind a small key/value
// store interface so the rest of the application can run and be tested on
// any platform.
package registry

import "errors"

// ErrNotExist is returned when a key or value is absent from the store.
var ErrNotExist = errors.New("registry value does not exist")

// ErrUnsupported is returned by the system store on non-Windows platforms.
var ErrUnsupported = errors.New("system registry is only available on windows")

// Store reads and writes named values under registry key paths. Paths are
// backslash-separated and may carry an HKCU/HKLM prefix; without one they
// are resolved under the current user hive.
type Store interface {
	GetString(path, name string) (string, error)
	SetString(path, name, value string) error
	GetDWord(path, name string) (uint32, error)
	SetDWord(path, name string, value uint32) error
}
