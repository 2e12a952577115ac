// Package menu synthesizes context-menu entries from a selection
// classification and launches the archiver when one is invoked.
package menu

import (
	"fmt"
	"strings"
)

// CommandID identifies a menu command. Values are offsets from the first
// command id the host reserves for the extension.
type CommandID int

const (
	CmdExtract CommandID = iota
	CmdZipToSingle
	CmdZipEachFolder
	CmdZipAllFolders
)

// Command is one row of the static command registry.
type Command struct {
	ID   CommandID
	Verb string
	Help string
}

var registry = []Command{
	{ID: CmdExtract, Verb: "ArchMenuExtractTo", Help: "Extract archive to folder"},
	{ID: CmdZipToSingle, Verb: "ArchMenuZipTo", Help: "Add selected items to a zip archive"},
	{ID: CmdZipEachFolder, Verb: "ArchMenuZipEach", Help: "Zip each selected folder into its own archive"},
	{ID: CmdZipAllFolders, Verb: "ArchMenuZipAll", Help: "Add all selected folders to a single zip archive"},
}

// Commands returns every registered command in id order.
func Commands() []Command {
	return append([]Command(nil), registry...)
}

// Lookup returns the command registered under id.
func Lookup(id CommandID) (Command, bool) {
	if id < 0 || int(id) >= len(registry) {
		return Command{}, false
	}
	return registry[id], true
}

// LookupVerb resolves a verb, ignoring case.
func LookupVerb(verb string) (Command, bool) {
	for _, c := range registry {
		if strings.EqualFold(c.Verb, verb) {
			return c, true
		}
	}
	return Command{}, false
}

func (id CommandID) String() string {
	if c, ok := Lookup(id); ok {
		return c.Verb
	}
	return fmt.Sprintf("CommandID(%d)", int(id))
}
