//go:build !windows

package winreg

type systemRegistry struct{}

func (systemRegistry) defaultValue(string) (string, error) { return "", ErrUnsupported }
func (systemRegistry) subKeys(string) ([]string, error)    { return nil, ErrUnsupported }
func (systemRegistry) dword(string, string) (uint64, error) {
	return 0, ErrUnsupported
}
