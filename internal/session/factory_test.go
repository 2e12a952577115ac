package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdonaldj/archmenu/internal/config"
	"github.com/mcdonaldj/archmenu/internal/menu"
	"github.com/mcdonaldj/archmenu/internal/mocks"
	"github.com/mcdonaldj/archmenu/internal/selection"
)

func TestFactoryUsesConfigWithoutRegistry(t *testing.T) {
	f, _, _ := newTestFactory(t)

	path, src := f.ArchiverPath()
	assert.Equal(t, config.DefaultArchiverPath, path)
	assert.Equal(t, SourceConfig, src)

	exts, src := f.Extensions()
	assert.True(t, exts.Has(".rar"))
	assert.Equal(t, SourceConfig, src)
}

func TestFactoryPrefersRegistry(t *testing.T) {
	reg := mocks.NewMockConfigSource()
	reg.ArchiverPathResult = `D:\Tools\WinRAR\WinRAR.exe`
	reg.ExtensionsResult = []string{"rar", "cbr"}

	f := NewFactory(testConfig(), mocks.NewMockFileSystem(), mocks.NewMockLauncher(), WithRegistry(reg))

	path, src := f.ArchiverPath()
	assert.Equal(t, `D:\Tools\WinRAR\WinRAR.exe`, path)
	assert.Equal(t, SourceRegistry, src)

	exts, src := f.Extensions()
	assert.Equal(t, []string{".cbr", ".rar"}, exts.List())
	assert.Equal(t, SourceRegistry, src)

	s := f.NewSession()
	require.NoError(t, s.Initialize([]string{`C:\comics\issue1.cbr`}))
	entries, err := s.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `D:\Tools\WinRAR\WinRAR.exe`, entries[0].Icon.Path)
}

func TestFactoryRegistryFallback(t *testing.T) {
	reg := mocks.NewMockConfigSource()
	reg.Errors["ArchiverPath"] = errors.New("key not found")
	reg.ExtensionsResult = nil

	cfg := testConfig()
	cfg.ArchiverPath = `E:\rar\WinRAR.exe`
	cfg.Extensions = []string{".7z"}
	f := NewFactory(cfg, mocks.NewMockFileSystem(), mocks.NewMockLauncher(), WithRegistry(reg))

	path, src := f.ArchiverPath()
	assert.Equal(t, `E:\rar\WinRAR.exe`, path)
	assert.Equal(t, SourceConfig, src)

	exts, src := f.Extensions()
	assert.Equal(t, []string{".7z"}, exts.List())
	assert.Equal(t, SourceConfig, src)
}

func TestFactoryReloadAffectsOnlyNewSessions(t *testing.T) {
	reg := mocks.NewMockConfigSource()
	reg.ArchiverPathResult = `C:\WinRAR.exe`
	reg.ExtensionsResult = []string{".rar"}
	f := NewFactory(testConfig(), mocks.NewMockFileSystem(), mocks.NewMockLauncher(), WithRegistry(reg))

	before := f.NewSession()

	reg.ExtensionsResult = []string{".cbz"}
	f.Reload()
	assert.Equal(t, 2, reg.Calls["ArchiveExtensions"])

	after := f.NewSession()

	require.NoError(t, before.Initialize([]string{`C:\d\x.rar`}))
	require.NoError(t, after.Initialize([]string{`C:\d\x.rar`}))

	cb, err := before.Classification()
	require.NoError(t, err)
	ca, err := after.Classification()
	require.NoError(t, err)
	assert.Equal(t, selection.KindSingleArchive, cb.Kind)
	assert.Equal(t, selection.KindNone, ca.Kind)
}

func TestFactoryMaxSelectedItems(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSelectedItems = 2
	f := NewFactory(cfg, mocks.NewMockFileSystem(), mocks.NewMockLauncher())

	s := f.NewSession()
	require.NoError(t, s.Initialize([]string{`C:\d\1`, `C:\d\2`, `C:\d\3`}))
	c, err := s.Classification()
	require.NoError(t, err)
	assert.True(t, c.Truncated)
	assert.Len(t, c.SelectedPaths, 2)
}

func TestFactoryCompletion(t *testing.T) {
	var mu sync.Mutex
	var pids []int
	fs := mocks.NewMockFileSystem()
	f := NewFactory(testConfig(), fs, mocks.NewMockLauncher(), WithCompletion(func(lr menu.LaunchResult, err error) {
		mu.Lock()
		defer mu.Unlock()
		pids = append(pids, lr.PID)
	}))

	s := f.NewSession()
	require.NoError(t, s.Initialize([]string{`C:\d\a.txt`, `C:\d\b.txt`}))
	res, err := s.InvokeCommand(menu.CmdZipToSingle)
	require.NoError(t, err)
	f.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{res.Launches[0].PID}, pids)
	assert.Empty(t, fs.FileNames())
	assert.True(t, len(res.ListFile) > len(`C:\Temp\`))
}

func TestFactoryUseConfig(t *testing.T) {
	f, _, _ := newTestFactory(t)

	cfg := testConfig()
	cfg.ArchiverPath = `F:\WinRAR.exe`
	cfg.Extensions = []string{".cbz"}
	f.UseConfig(cfg)

	path, _ := f.ArchiverPath()
	assert.Equal(t, `F:\WinRAR.exe`, path)
	exts, _ := f.Extensions()
	assert.Equal(t, []string{".cbz"}, exts.List())
	assert.Same(t, cfg, f.Config())
}
