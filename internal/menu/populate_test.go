package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdonaldj/archmenu/internal/extset"
	"github.com/mcdonaldj/archmenu/internal/mocks"
	"github.com/mcdonaldj/archmenu/internal/ports"
	"github.com/mcdonaldj/archmenu/internal/selection"
)

var testIcon = ports.IconRef{Path: `C:\Program Files\WinRAR\WinRAR.exe`}

func classify(t *testing.T, fs *mocks.MockFileSystem, paths ...string) selection.Classification {
	t.Helper()
	return selection.New(fs, classifierExts()).Classify(paths)
}

func classifierExts() extset.Set {
	return extset.New(".rar", ".zip", ".gz")
}

func labels(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

func TestPopulate(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.AddDir(`C:\d\F1`, `C:\d\F2`, `C:\d\F3`, `C:\`, `D:\`)

	tests := []struct {
		name   string
		paths  []string
		labels []string
		ids    []CommandID
	}{
		{"empty", nil, nil, nil},
		{"single plain file", []string{`C:\d\a.txt`}, nil, nil},
		{"single archive", []string{`C:\data\report.rar`},
			[]string{`Extract to "report\"`}, []CommandID{CmdExtract}},
		{"multi-dot archive", []string{`C:\data\archive.tar.gz`},
			[]string{`Extract to "archive.tar\"`}, []CommandID{CmdExtract}},
		{"files only", []string{`C:\d\a.txt`, `C:\d\b.txt`},
			[]string{`Zip to "d.zip"`}, []CommandID{CmdZipToSingle}},
		{"mixed", []string{`C:\d\a.txt`, `C:\d\F1`},
			[]string{`Zip to "d.zip"`}, []CommandID{CmdZipToSingle}},
		{"single folder", []string{`C:\d\F1`},
			[]string{`Zip "F1"`}, []CommandID{CmdZipEachFolder}},
		{"two folders", []string{`C:\d\F1`, `C:\d\F2`},
			[]string{"Zip each folder separately (2 folders)", `Zip all to "d.zip"`},
			[]CommandID{CmdZipEachFolder, CmdZipAllFolders}},
		{"three folders", []string{`C:\d\F1`, `C:\d\F2`, `C:\d\F3`},
			[]string{"Zip each folder separately (3 folders)", `Zip all to "d.zip"`},
			[]CommandID{CmdZipEachFolder, CmdZipAllFolders}},
		{"drive root", []string{`C:\`},
			[]string{`Zip "C"`}, []CommandID{CmdZipEachFolder}},
		{"two drive roots", []string{`C:\`, `D:\`},
			[]string{"Zip each folder separately (2 folders)", `Zip all to "Archive.zip"`},
			[]CommandID{CmdZipEachFolder, CmdZipAllFolders}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Populate(classify(t, fs, tt.paths...), testIcon)
			assert.Equal(t, tt.labels, labels(entries))
			var ids []CommandID
			for _, e := range entries {
				ids = append(ids, e.ID)
				assert.Equal(t, testIcon, e.Icon)
				assert.Equal(t, e.ID.String(), e.Verb)
				assert.True(t, Offers(classify(t, fs, tt.paths...), e.ID))
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestPopulateIsIdempotent(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.AddDir(`C:\d\F1`, `C:\d\F2`)
	c := classify(t, fs, `C:\d\F1`, `C:\d\F2`)

	assert.Equal(t, Populate(c, testIcon), Populate(c, testIcon))
}

func TestPopulateForwardSlashPaths(t *testing.T) {
	c := classify(t, mocks.NewMockFileSystem(), "/srv/data/report.rar")

	entries := Populate(c, testIcon)
	require.Len(t, entries, 1)
	assert.Equal(t, `Extract to "report/"`, entries[0].Label)
}

func TestOffers(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.AddDir(`C:\d\F1`, `C:\d\F2`)

	single := classify(t, fs, `C:\d\F1`)
	assert.True(t, Offers(single, CmdZipEachFolder))
	assert.False(t, Offers(single, CmdZipAllFolders))
	assert.False(t, Offers(single, CmdZipToSingle))

	none := classify(t, fs, `C:\d\a.txt`)
	for _, cmd := range Commands() {
		assert.False(t, Offers(none, cmd.ID), cmd.Verb)
	}
	assert.False(t, Offers(single, CommandID(7)))
}

func TestInsertPosition(t *testing.T) {
	tests := []struct {
		name      string
		labels    []string
		anchor    string
		suggested int
		want      int
	}{
		{"after anchor", []string{"Open", "Add to archive... (WinRAR)", "Properties"}, "WinRAR", 5, 2},
		{"first match wins", []string{"WinRAR", "WinRAR again"}, "WinRAR", 5, 1},
		{"no anchor item", []string{"Open", "Properties"}, "WinRAR", 1, 1},
		{"empty menu", nil, "WinRAR", 0, 0},
		{"empty anchor", []string{"Open"}, "", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := mocks.NewMockMenuHost(tt.labels...)
			assert.Equal(t, tt.want, InsertPosition(host, tt.anchor, tt.suggested))
		})
	}
}
