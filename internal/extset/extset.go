// Package extset holds the set of file extensions treated as archives.
package extset

import (
	"sort"
	"strings"

	"github.com/mcdonaldj/archmenu/internal/shellpath"
)

// MaxExtensions caps how many extensions a set keeps. Extra entries from the
// configuration source are ignored.
const MaxExtensions = 64

// MaxExtensionLength is the longest extension accepted, dot included.
const MaxExtensionLength = 15

// Set is an immutable, case-insensitive set of extensions such as ".zip".
// The zero value is an empty set.
type Set struct {
	exts map[string]struct{}
}

// New builds a Set from raw extension strings. Entries are trimmed, lowered,
// given a leading dot when missing, and dropped when empty or too long.
func New(exts ...string) Set {
	s := Set{exts: make(map[string]struct{}, len(exts))}
	for _, e := range exts {
		if len(s.exts) >= MaxExtensions {
			break
		}
		norm, ok := normalize(e)
		if !ok {
			continue
		}
		s.exts[norm] = struct{}{}
	}
	return s
}

func normalize(ext string) (string, bool) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return "", false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if len(ext) > MaxExtensionLength || strings.ContainsAny(ext, `\/`) {
		return "", false
	}
	return ext, true
}

// Has reports whether ext (with or without leading dot) is in the set.
func (s Set) Has(ext string) bool {
	norm, ok := normalize(ext)
	if !ok {
		return false
	}
	_, found := s.exts[norm]
	return found
}

// Matches reports whether the final extension of path is in the set.
func (s Set) Matches(path string) bool {
	ext := shellpath.Ext(path)
	if ext == "" {
		return false
	}
	return s.Has(ext)
}

// Len returns the number of extensions.
func (s Set) Len() int {
	return len(s.exts)
}

// List returns the extensions sorted alphabetically.
func (s Set) List() []string {
	out := make([]string, 0, len(s.exts))
	for e := range s.exts {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
