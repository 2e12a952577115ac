package menu

import (
	"fmt"
	"strings"

	"github.com/mcdonaldj/archmenu/internal/ports"
	"github.com/mcdonaldj/archmenu/internal/selection"
	"github.com/mcdonaldj/archmenu/internal/shellpath"
)

// DefaultAnchor is the host menu text entries are placed after.
const DefaultAnchor = "WinRAR"

// Entry is one menu entry synthesized for a classification.
type Entry struct {
	ID    CommandID
	Label string
	Verb  string
	Icon  ports.IconRef
}

// Populate returns the entries to show for c, in display order. It is a pure
// function of its inputs; KindNone yields no entries.
func Populate(c selection.Classification, icon ports.IconRef) []Entry {
	var entries []Entry
	add := func(id CommandID, label string) {
		cmd, _ := Lookup(id)
		entries = append(entries, Entry{ID: id, Label: label, Verb: cmd.Verb, Icon: icon})
	}

	switch c.Kind {
	case selection.KindSingleArchive:
		add(CmdExtract, fmt.Sprintf(`Extract to "%s%s"`, c.ArchiveBaseName, shellpath.Separator(c.ArchivePath)))
	case selection.KindFilesOnly, selection.KindMixed:
		add(CmdZipToSingle, fmt.Sprintf(`Zip to "%s.zip"`, c.ParentName))
	case selection.KindFoldersOnly:
		folders := c.Folders()
		if len(folders) == 1 {
			add(CmdZipEachFolder, fmt.Sprintf(`Zip "%s"`, folders[0].Name))
			break
		}
		add(CmdZipEachFolder, fmt.Sprintf("Zip each folder separately (%d folders)", len(folders)))
		add(CmdZipAllFolders, fmt.Sprintf(`Zip all to "%s.zip"`, c.ParentName))
	}
	return entries
}

// Offers reports whether Populate would produce an entry for id.
func Offers(c selection.Classification, id CommandID) bool {
	switch id {
	case CmdExtract:
		return c.Kind == selection.KindSingleArchive
	case CmdZipToSingle:
		return c.Kind == selection.KindFilesOnly || c.Kind == selection.KindMixed
	case CmdZipEachFolder:
		return c.Kind == selection.KindFoldersOnly
	case CmdZipAllFolders:
		return c.Kind == selection.KindFoldersOnly && c.FolderCount > 1
	}
	return false
}

// InsertPosition returns the position directly after the first host item
// whose text contains anchor, or suggested when no item does.
func InsertPosition(host ports.MenuHost, anchor string, suggested int) int {
	if anchor == "" {
		return suggested
	}
	for i := 0; i < host.ItemCount(); i++ {
		if strings.Contains(host.ItemText(i), anchor) {
			return i + 1
		}
	}
	return suggested
}
