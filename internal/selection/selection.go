// Package selection classifies a file-manager selection into the archive
// operation that applies to it.
package selection

import (
	"github.com/rs/zerolog"

	"github.com/mcdonaldj/archmenu/internal/extset"
	"github.com/mcdonaldj/archmenu/internal/ports"
	"github.com/mcdonaldj/archmenu/internal/shellpath"
)

// Kind is the classification of a selection.
type Kind int

const (
	KindNone Kind = iota
	KindSingleArchive
	KindFilesOnly
	KindFoldersOnly
	KindMixed
)

func (k Kind) String() string {
	switch k {
	case KindSingleArchive:
		return "SINGLE_ARCHIVE"
	case KindFilesOnly:
		return "FILES_ONLY"
	case KindFoldersOnly:
		return "FOLDERS_ONLY"
	case KindMixed:
		return "MIXED"
	default:
		return "NONE"
	}
}

// DefaultMaxSelectedItems is the item cap used when none is configured.
const DefaultMaxSelectedItems = 256

// fallbackParentName names "zip all" archives for items at a filesystem root.
const fallbackParentName = "Archive"

// Item is one retained selection entry with its stat-ed type.
type Item struct {
	Path  string
	IsDir bool

	// Name is the base name, or the drive letter for a drive root.
	Name string
	// Archive is where a folder is zipped on its own: "<name>.zip" beside
	// it, or inside it for a root. Empty for files.
	Archive string
}

// Classification is the immutable outcome of classifying one selection.
type Classification struct {
	Kind          Kind
	SelectedPaths []string
	Items         []Item
	FileCount     int
	FolderCount   int
	Truncated     bool

	ParentFolder string
	ParentName   string

	// Set only for KindSingleArchive.
	ArchivePath        string
	ArchiveBaseName    string
	ExtractDestination string
}

// Folders returns the retained items that are directories, in selection order.
func (c Classification) Folders() []Item {
	var out []Item
	for _, it := range c.Items {
		if it.IsDir {
			out = append(out, it)
		}
	}
	return out
}

// FolderPaths returns the paths of Folders.
func (c Classification) FolderPaths() []string {
	var out []string
	for _, it := range c.Folders() {
		out = append(out, it.Path)
	}
	return out
}

// Classifier turns raw selections into Classifications.
type Classifier struct {
	fs       ports.FileSystem
	exts     extset.Set
	maxItems int
	logger   zerolog.Logger
}

// Option is a functional option for configuring a Classifier.
type Option func(*Classifier)

// WithMaxItems sets the selection cap. Values below 1 are ignored.
func WithMaxItems(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.maxItems = n
		}
	}
}

// WithLogger sets the logger used for classification diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Classifier) {
		c.logger = l
	}
}

// New creates a Classifier that stats through fs and detects archives by exts.
func New(fs ports.FileSystem, exts extset.Set, opts ...Option) *Classifier {
	c := &Classifier{
		fs:       fs,
		exts:     exts,
		maxItems: DefaultMaxSelectedItems,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxItems returns the selection cap in effect.
func (c *Classifier) MaxItems() int {
	return c.maxItems
}

// Classify classifies paths. It never fails: an empty selection or one with
// nothing to offer yields KindNone.
func (c *Classifier) Classify(paths []string) Classification {
	if len(paths) == 0 {
		return Classification{Kind: KindNone}
	}

	result := Classification{
		ParentFolder: container(paths[0]),
	}
	result.ParentName = parentName(result.ParentFolder)

	if len(paths) == 1 {
		return c.classifySingle(paths[0], result)
	}

	retained := paths
	if len(retained) > c.maxItems {
		c.logger.Debug().
			Int("selected", len(paths)).
			Int("max", c.maxItems).
			Msg("Selection truncated")
		retained = retained[:c.maxItems]
		result.Truncated = true
	}

	result.SelectedPaths = make([]string, 0, len(retained))
	result.Items = make([]Item, 0, len(retained))
	for _, p := range retained {
		isDir := c.isDir(p)
		if isDir {
			result.FolderCount++
		} else {
			result.FileCount++
		}
		result.SelectedPaths = append(result.SelectedPaths, p)
		result.Items = append(result.Items, newItem(p, isDir))
	}

	switch {
	case result.FolderCount > 0 && result.FileCount == 0:
		result.Kind = KindFoldersOnly
	case result.FileCount > 0 && result.FolderCount == 0:
		result.Kind = KindFilesOnly
	default:
		result.Kind = KindMixed
	}

	return result
}

func (c *Classifier) classifySingle(p string, result Classification) Classification {
	result.SelectedPaths = []string{p}

	// Archives are recognized by name alone. A name that is only an
	// extension (".zip") has no stem to extract into and is not offered.
	if c.exts.Matches(p) && shellpath.Stem(p) != "" {
		result.Kind = KindSingleArchive
		result.FileCount = 1
		result.Items = []Item{newItem(p, false)}
		result.ArchivePath = p
		result.ArchiveBaseName = shellpath.Stem(p)
		result.ExtractDestination = shellpath.Join(shellpath.Dir(p), result.ArchiveBaseName)
		return result
	}

	if c.isDir(p) {
		result.Kind = KindFoldersOnly
		result.FolderCount = 1
		result.Items = []Item{newItem(p, true)}
		return result
	}

	result.Kind = KindNone
	result.FileCount = 1
	result.Items = []Item{newItem(p, false)}
	return result
}

// isDir stats p. Paths that cannot be stat-ed count as files, so a selection
// containing them never gets folder-only commands.
func (c *Classifier) isDir(p string) bool {
	info, err := c.fs.Stat(p)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", p).Msg("Stat failed, treating as file")
		return false
	}
	return info.IsDir()
}

func newItem(p string, isDir bool) Item {
	it := Item{Path: p, IsDir: isDir, Name: shellpath.Name(p)}
	if isDir {
		name := it.Name
		if name == "" {
			name = fallbackParentName
		}
		it.Archive = shellpath.Join(container(p), name+".zip")
	}
	return it
}

// container returns the folder p's archives are written to: its parent, or
// p itself when p is a root and has none.
func container(p string) string {
	if dir := shellpath.Dir(p); dir != "" || p == "" || !shellpath.IsRoot(p) {
		return dir
	}
	return p
}

func parentName(parent string) string {
	if name := shellpath.Base(parent); name != "" {
		return name
	}
	return fallbackParentName
}
