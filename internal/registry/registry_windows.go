//go:build windows

package registry

import (
	"errors"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// SystemStore is the live Windows registry.
type SystemStore struct{}

// NewSystemStore returns a Store backed by the Windows registry.
func NewSystemStore() (Store, error) {
	return &SystemStore{}, nil
}

var _ Store = (*SystemStore)(nil)

func (*SystemStore) GetString(path, name string) (string, error) {
	root, subPath := splitRootAndPath(path)
	k, err := registry.OpenKey(root, subPath, registry.QUERY_VALUE)
	if err != nil {
		return "", translate(err)
	}
	defer k.Close()

	val, _, err := k.GetStringValue(name)
	return val, translate(err)
}

func (*SystemStore) SetString(path, name, value string) error {
	root, subPath := splitRootAndPath(path)
	k, _, err := registry.CreateKey(root, subPath, registry.SET_VALUE)
	if err != nil {
		return translate(err)
	}
	defer k.Close()

	return k.SetStringValue(name, value)
}

func (*SystemStore) GetDWord(path, name string) (uint32, error) {
	root, subPath := splitRootAndPath(path)
	k, err := registry.OpenKey(root, subPath, registry.QUERY_VALUE)
	if err != nil {
		return 0, translate(err)
	}
	defer k.Close()

	val, _, err := k.GetIntegerValue(name)
	if err != nil {
		return 0, translate(err)
	}
	return uint32(val), nil
}

func (*SystemStore) SetDWord(path, name string, value uint32) error {
	root, subPath := splitRootAndPath(path)
	k, _, err := registry.CreateKey(root, subPath, registry.SET_VALUE)
	if err != nil {
		return translate(err)
	}
	defer k.Close()

	return k.SetDWordValue(name, value)
}

func translate(err error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return ErrNotExist
	}
	return err
}

func splitRootAndPath(p string) (registry.Key, string) {
	parts := strings.SplitN(p, `\`, 2)
	if len(parts) < 2 {
		return registry.CURRENT_USER, p
	}
	switch parts[0] {
	case "HKCR":
		return registry.CLASSES_ROOT, parts[1]
	case "HKCU":
		return registry.CURRENT_USER, parts[1]
	case "HKLM":
		return registry.LOCAL_MACHINE, parts[1]
	default:
		return registry.CURRENT_USER, p
	}
}
