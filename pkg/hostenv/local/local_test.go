package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingware/spellbridge/pkg/hostenv"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, "spellbridge.yaml"), []byte(content), 0644)
	require.NoError(t, err)
}

func TestNewContextWithoutConfigFile(t *testing.T) {
	sc, err := NewContext(t.TempDir())

	require.NoError(t, err)
	require.NotNil(t, sc)

	view, ok := hostenv.ConfigGroup("org.lingware.spellbridge.Config/hyphenator", sc)
	require.True(t, ok)
	_, present := view.Value("hyphWordParts")
	assert.False(t, present)
}

func TestConfigGroupReadsValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
org:
  lingware:
    spellbridge:
      config:
        hyphenator:
          hyphwordparts: true
          hyphunknownwords: false
        dictionary:
          variant: "standard"
`)

	sc, err := NewContext(dir)
	require.NoError(t, err)

	view, ok := hostenv.ConfigGroup("org.lingware.spellbridge.Config/hyphenator", sc)
	require.True(t, ok)
	assert.True(t, view.BoolValue("hyphWordParts"))
	assert.False(t, view.BoolValue("hyphUnknownWords"))

	dict, ok := hostenv.ConfigGroup("org.lingware.spellbridge.Config/dictionary", sc)
	require.True(t, ok)
	assert.Equal(t, "standard", dict.StringValue("variant"))
}

func TestConfigViewSetValue(t *testing.T) {
	sc, err := NewContext(t.TempDir())
	require.NoError(t, err)

	view, ok := hostenv.ConfigGroup("org.lingware.spellbridge.Config/dictionary", sc)
	require.True(t, ok)

	require.NoError(t, view.SetValue("variant", "nynorsk"))
	assert.Equal(t, "nynorsk", view.StringValue("variant"))

	value, present := view.Value("variant")
	require.True(t, present)
	assert.Equal(t, "nynorsk", value)
}

func TestInstallationPathResolves(t *testing.T) {
	sc, err := NewContext(t.TempDir())
	require.NoError(t, err)

	path := hostenv.InstallationPath(sc)

	require.NotEmpty(t, path)
	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestPackageLocationRejectsUnknownPackage(t *testing.T) {
	sc, err := NewContext(t.TempDir())
	require.NoError(t, err)

	provider, err := sc.PackageInfo()
	require.NoError(t, err)

	_, err = provider.PackageLocation("org.example.other")
	assert.Error(t, err)
}

func TestCreateViewRejectsEmptyPath(t *testing.T) {
	sc, err := NewContext(t.TempDir())
	require.NoError(t, err)

	factory, err := sc.ServiceFactory()
	require.NoError(t, err)
	provider, err := factory.CreateConfigProvider()
	require.NoError(t, err)

	_, err = provider.CreateView("")
	assert.Error(t, err)
}
