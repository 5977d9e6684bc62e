// Package local provides a ServiceContext for running spellbridge as its
// own host. Package location comes from the running executable; the
// configuration provider is backed by a viper store under the data
// directory. The hostenv accessors behave identically whether they talk to
// a real host or to this context.
package local

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lingware/spellbridge/pkg/hostenv"
)

// configName is the base name of the configuration file, spellbridge.yaml.
const configName = "spellbridge"

// Context implements hostenv.ServiceContext for a standalone process.
type Context struct {
	installDir string
	store      *viper.Viper
}

// NewContext creates a Context whose configuration store reads
// spellbridge.yaml from dataDir. A missing configuration file is fine; the
// store then simply has no values and every lookup falls back to defaults.
func NewContext(dataDir string) (*Context, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("cannot locate executable: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read configuration: %w", err)
		}
		log.Printf("[Local] No configuration file in %s, using defaults", dataDir)
	}

	return &Context{
		installDir: filepath.Dir(exe),
		store:      v,
	}, nil
}

// PackageInfo implements hostenv.ServiceContext.
func (c *Context) PackageInfo() (hostenv.PackageInfoProvider, error) {
	return &packageInfo{installDir: c.installDir}, nil
}

// ServiceFactory implements hostenv.ServiceContext.
func (c *Context) ServiceFactory() (hostenv.ServiceFactory, error) {
	return &serviceFactory{store: c.store}, nil
}

type packageInfo struct {
	installDir string
}

func (p *packageInfo) PackageLocation(packageID string) (string, error) {
	if packageID != hostenv.PackageID {
		return "", fmt.Errorf("unknown package %q", packageID)
	}
	return "file://" + filepath.ToSlash(p.installDir), nil
}

type serviceFactory struct {
	store *viper.Viper
}

func (f *serviceFactory) CreateConfigProvider() (hostenv.ConfigProvider, error) {
	return &configProvider{store: f.store}, nil
}

type configProvider struct {
	store *viper.Viper
}

// CreateView scopes a view to nodePath. Hierarchical node paths use '/'
// between groups; in the store they become dotted lower-case viper keys.
func (p *configProvider) CreateView(nodePath string) (hostenv.ConfigView, error) {
	if nodePath == "" {
		return nil, fmt.Errorf("empty node path")
	}
	prefix := strings.ToLower(strings.ReplaceAll(nodePath, "/", "."))
	return &configView{store: p.store, prefix: prefix}, nil
}

type configView struct {
	store  *viper.Viper
	prefix string
}

func (v *configView) key(k string) string {
	return v.prefix + "." + strings.ToLower(k)
}

func (v *configView) Value(key string) (any, bool) {
	full := v.key(key)
	if !v.store.IsSet(full) {
		return nil, false
	}
	return v.store.Get(full), true
}

func (v *configView) StringValue(key string) string {
	return v.store.GetString(v.key(key))
}

func (v *configView) BoolValue(key string) bool {
	return v.store.GetBool(v.key(key))
}

func (v *configView) IntValue(key string) int {
	return v.store.GetInt(v.key(key))
}

// SetValue updates the in-process store. The change lives for the process;
// persisting it is the owner's concern, matching the updatable-view
// contract.
func (v *configView) SetValue(key string, value any) error {
	v.store.Set(v.key(key), value)
	return nil
}
