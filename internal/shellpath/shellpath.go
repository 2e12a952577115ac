// Package shellpath implements path handling with Windows shell semantics.
//
// Selections come from a Windows file manager, so paths use backslashes and
// drive letters regardless of the OS the code runs on. path/filepath follows
// the host OS and would treat `C:\data\report.rar` as a single name on Linux,
// so these helpers accept both `\` and `/` as separators and keep whichever
// style the input uses when joining.
package shellpath

import "strings"

func isSep(c byte) bool {
	return c == '\\' || c == '/'
}

// Separator returns the separator style used by p: backslash when p contains
// one or starts with a drive letter, forward slash otherwise.
func Separator(p string) string {
	if strings.Contains(p, `\`) || isDrive(p) {
		return `\`
	}
	if strings.Contains(p, "/") {
		return "/"
	}
	return `\`
}

// isDrive reports whether p is a bare drive designator like "C:".
func isDrive(p string) bool {
	return len(p) == 2 && p[1] == ':' && isLetter(p[0])
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsRoot reports whether p names a filesystem root ("C:\", "/", "C:").
func IsRoot(p string) bool {
	trimmed := trimTrailing(p)
	return trimmed == "" || isDrive(trimmed)
}

// IsAbs reports whether p is absolute in either convention: rooted at a
// separator, or a drive letter followed by a separator.
func IsAbs(p string) bool {
	if p == "" {
		return false
	}
	if isSep(p[0]) {
		return true
	}
	return len(p) >= 3 && isDrive(p[:2]) && isSep(p[2])
}

// trimTrailing removes trailing separators.
func trimTrailing(p string) string {
	for len(p) > 0 && isSep(p[len(p)-1]) {
		p = p[:len(p)-1]
	}
	return p
}

// Base returns the last element of p, ignoring trailing separators.
// Roots have no base and yield "".
func Base(p string) string {
	p = trimTrailing(p)
	if p == "" || isDrive(p) {
		return ""
	}
	for i := len(p) - 1; i >= 0; i-- {
		if isSep(p[i]) {
			return p[i+1:]
		}
	}
	return p
}

// Name returns the display name of p: its base, or the drive letter for a
// drive root (Name(`C:\`) is "C"). A bare "/" root yields "".
func Name(p string) string {
	trimmed := trimTrailing(p)
	if isDrive(trimmed) {
		return strings.ToUpper(trimmed[:1])
	}
	return Base(p)
}

// Dir returns everything but the last element of p. The parent of a top-level
// item is the root itself with its separator kept: Dir(`C:\a.txt`) is `C:\`.
// A bare name has no parent and yields "".
func Dir(p string) string {
	p = trimTrailing(p)
	if p == "" || isDrive(p) {
		return ""
	}
	i := len(p) - 1
	for i >= 0 && !isSep(p[i]) {
		i--
	}
	if i < 0 {
		return ""
	}
	dir := p[:i]
	if dir == "" || isDrive(dir) {
		return p[:i+1]
	}
	return trimTrailing(dir)
}

// Ext returns the final extension of p including the dot, or "" when the
// base name has none. Only the last dot counts: Ext("a.tar.gz") is ".gz".
func Ext(p string) string {
	base := Base(p)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i:]
	}
	return ""
}

// Stem returns the base name of p without its final extension.
func Stem(p string) string {
	base := Base(p)
	return base[:len(base)-len(Ext(base))]
}

// Join appends name to dir using dir's separator style.
func Join(dir, name string) string {
	if dir == "" {
		return name
	}
	if isSep(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + Separator(dir) + name
}
