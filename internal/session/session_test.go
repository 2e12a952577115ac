package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdonaldj/archmenu/internal/config"
	"github.com/mcdonaldj/archmenu/internal/menu"
	"github.com/mcdonaldj/archmenu/internal/mocks"
	"github.com/mcdonaldj/archmenu/internal/selection"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.UseRegistry = false
	cfg.ListFileDir = `C:\Temp`
	return cfg
}

func newTestFactory(t *testing.T) (*Factory, *mocks.MockFileSystem, *mocks.MockLauncher) {
	t.Helper()
	fs := mocks.NewMockFileSystem()
	fs.AddDir(`C:\d\F1`, `C:\d\F2`)
	launcher := mocks.NewMockLauncher()
	return NewFactory(testConfig(), fs, launcher), fs, launcher
}

func TestSessionLifecycle(t *testing.T) {
	f, _, launcher := newTestFactory(t)
	s := f.NewSession()
	assert.Equal(t, StateUninitialized, s.State())
	assert.NotEmpty(t, s.ID())

	require.NoError(t, s.Initialize([]string{`C:\data\report.rar`}))
	assert.Equal(t, StateInitialized, s.State())

	host := mocks.NewMockMenuHost("Open", "Extract files... (WinRAR)", "Properties")
	n, err := s.QueryContextMenu(host, 0, 100, QueryFlags{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, StatePopulated, s.State())
	assert.Equal(t, []string{"Open", "Extract files... (WinRAR)", `Extract to "report\"`, "Properties"}, host.Labels)
	require.Len(t, host.Inserted, 1)
	assert.Equal(t, 100+int(menu.CmdExtract), host.Inserted[0].Item.ID)
	assert.Equal(t, config.DefaultArchiverPath, host.Inserted[0].Item.Icon.Path)
	assert.Equal(t, 0, host.Inserted[0].Item.Icon.Index)

	res, err := s.InvokeCommand(menu.CmdExtract)
	require.NoError(t, err)
	assert.Len(t, res.Launches, 1)
	assert.Len(t, launcher.LaunchCalls(), 1)

	s.Release()
	assert.Equal(t, StateReleased, s.State())
	_, err = s.InvokeCommand(menu.CmdExtract)
	assert.True(t, errors.Is(err, ErrReleased))
	assert.True(t, errors.Is(s.Initialize([]string{`C:\x.rar`}), ErrReleased))
	s.Release()
}

func TestSessionInitializeTwice(t *testing.T) {
	f, _, _ := newTestFactory(t)
	s := f.NewSession()
	require.NoError(t, s.Initialize([]string{`C:\d\a.txt`}))

	err := s.Initialize([]string{`C:\d\b.txt`})
	assert.True(t, errors.Is(err, ErrAlreadyInitialized))
}

func TestSessionNotInitialized(t *testing.T) {
	f, _, launcher := newTestFactory(t)
	s := f.NewSession()

	_, err := s.InvokeCommand(menu.CmdZipToSingle)
	assert.True(t, errors.Is(err, ErrNotInitialized))

	_, err = s.QueryContextMenu(mocks.NewMockMenuHost(), 0, 1, QueryFlags{})
	assert.True(t, errors.Is(err, ErrNotInitialized))

	_, err = s.Classification()
	assert.True(t, errors.Is(err, ErrNotInitialized))

	_, err = s.Entries()
	assert.True(t, errors.Is(err, ErrNotInitialized))

	assert.Empty(t, launcher.LaunchCalls())
}

func TestQueryContextMenuNoEntries(t *testing.T) {
	f, _, _ := newTestFactory(t)
	s := f.NewSession()
	require.NoError(t, s.Initialize(nil))

	host := mocks.NewMockMenuHost("Open")
	n, err := s.QueryContextMenu(host, 0, 1, QueryFlags{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []string{"Open"}, host.Labels)
}

func TestQueryContextMenuDefaultOnly(t *testing.T) {
	f, _, _ := newTestFactory(t)
	s := f.NewSession()
	require.NoError(t, s.Initialize([]string{`C:\d\a.txt`, `C:\d\b.txt`}))

	host := mocks.NewMockMenuHost("Open")
	n, err := s.QueryContextMenu(host, 0, 1, QueryFlags{DefaultOnly: true})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, host.Inserted)
}

func TestQueryContextMenuFoldersWithoutAnchor(t *testing.T) {
	f, _, _ := newTestFactory(t)
	s := f.NewSession()
	require.NoError(t, s.Initialize([]string{`C:\d\F1`, `C:\d\F2`}))

	host := mocks.NewMockMenuHost("Open", "Properties")
	n, err := s.QueryContextMenu(host, 1, 50, QueryFlags{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{
		"Open",
		"Zip each folder separately (2 folders)",
		`Zip all to "d.zip"`,
		"Properties",
	}, host.Labels)
	assert.Equal(t, 50+int(menu.CmdZipEachFolder), host.Inserted[0].Item.ID)
	assert.Equal(t, 50+int(menu.CmdZipAllFolders), host.Inserted[1].Item.ID)
}

func TestQueryContextMenuIsIdempotent(t *testing.T) {
	f, _, _ := newTestFactory(t)
	s := f.NewSession()
	require.NoError(t, s.Initialize([]string{`C:\d\F1`, `C:\d\F2`}))

	a := mocks.NewMockMenuHost("Open")
	b := mocks.NewMockMenuHost("Open")
	n1, err := s.QueryContextMenu(a, 0, 1, QueryFlags{})
	require.NoError(t, err)
	n2, err := s.QueryContextMenu(b, 0, 1, QueryFlags{})
	require.NoError(t, err)

	assert.Equal(t, n1, n2)
	assert.Equal(t, a.Inserted, b.Inserted)
}

func TestQueryContextMenuInsertFailure(t *testing.T) {
	f, _, _ := newTestFactory(t)
	s := f.NewSession()
	require.NoError(t, s.Initialize([]string{`C:\d\a.txt`, `C:\d\b.txt`}))

	host := mocks.NewMockMenuHost()
	host.InsertErr = errors.New("menu full")
	n, err := s.QueryContextMenu(host, 0, 1, QueryFlags{})
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestInvokeVerb(t *testing.T) {
	f, fs, launcher := newTestFactory(t)
	s := f.NewSession()
	require.NoError(t, s.Initialize([]string{`C:\d\F1`, `C:\d\F2`}))

	res, err := s.InvokeVerb("ArchMenuZipEach")
	require.NoError(t, err)
	assert.Equal(t, menu.CmdZipEachFolder, res.Command)
	assert.Len(t, launcher.LaunchCalls(), 2)

	_, err = s.InvokeVerb("open")
	assert.True(t, errors.Is(err, menu.ErrInvalidArgument))

	_, err = s.InvokeVerb("ArchMenuExtractTo")
	assert.True(t, errors.Is(err, menu.ErrInvalidCommand))
	assert.Len(t, launcher.LaunchCalls(), 2)

	f.Wait()
	assert.Empty(t, fs.FileNames())
}

func TestGetCommandString(t *testing.T) {
	f, _, _ := newTestFactory(t)
	s := f.NewSession()

	help, err := s.GetCommandString(menu.CmdZipAllFolders, HelpText)
	require.NoError(t, err)
	assert.Equal(t, "Add all selected folders to a single zip archive", help)

	verb, err := s.GetCommandString(menu.CmdExtract, Verb)
	require.NoError(t, err)
	assert.Equal(t, "ArchMenuExtractTo", verb)

	_, err = s.GetCommandString(menu.CommandID(9), Verb)
	assert.True(t, errors.Is(err, menu.ErrInvalidArgument))

	_, err = s.GetCommandString(menu.CmdExtract, StringKind(5))
	assert.True(t, errors.Is(err, menu.ErrInvalidArgument))
}

func TestSessionClassification(t *testing.T) {
	f, _, _ := newTestFactory(t)
	s := f.NewSession()
	require.NoError(t, s.Initialize([]string{`C:\d\a.txt`, `C:\d\F1`}))

	c, err := s.Classification()
	require.NoError(t, err)
	assert.Equal(t, selection.KindMixed, c.Kind)

	entries, err := s.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `Zip to "d.zip"`, entries[0].Label)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "initialized", StateInitialized.String())
	assert.Equal(t, "populated", StatePopulated.String())
	assert.Equal(t, "released", StateReleased.String())
}
