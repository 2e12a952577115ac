//go:build windows

package winreg

import (
	"golang.org/x/sys/windows/registry"
)

type systemRegistry struct{}

func (systemRegistry) defaultValue(key string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, key, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	v, _, err := k.GetStringValue("")
	return v, err
}

func (systemRegistry) subKeys(key string) ([]string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	return k.ReadSubKeyNames(-1)
}

func (systemRegistry) dword(key, name string) (uint64, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.QUERY_VALUE)
	if err != nil {
		return 0, err
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	return v, err
}
