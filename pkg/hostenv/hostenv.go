// Package hostenv bridges the component to the host application's service
// registry. It resolves the on-disk location of the deployment package and
// opens configuration subtrees, tolerating every host-side failure by
// returning an empty or absent result instead of propagating it.
package hostenv

// PackageID is the fixed identifier of this component's deployment package,
// used to ask the host where the package is installed.
const PackageID = "org.lingware.spellbridge"

// ServiceContext is the capability object supplied by the host at component
// activation. It is the only path through which this component reaches host
// services; it is always injected, never created locally.
type ServiceContext interface {
	// PackageInfo returns the host's package deployment information
	// capability.
	PackageInfo() (PackageInfoProvider, error)

	// ServiceFactory returns the host's generic service creation factory.
	ServiceFactory() (ServiceFactory, error)
}

// PackageInfoProvider answers questions about installed deployment packages.
type PackageInfoProvider interface {
	// PackageLocation returns the file URL of the named package.
	PackageLocation(packageID string) (string, error)
}

// ServiceFactory creates host services by name.
type ServiceFactory interface {
	// CreateConfigProvider instantiates the host's configuration provider
	// service.
	CreateConfigProvider() (ConfigProvider, error)
}

// ConfigProvider resolves hierarchical configuration subtrees into views.
type ConfigProvider interface {
	// CreateView instantiates an updatable configuration view scoped to
	// the subtree named by nodePath.
	CreateView(nodePath string) (ConfigView, error)
}

// ConfigView is an updatable view of one configuration subtree.
type ConfigView interface {
	// Value returns the raw value stored under key and whether it exists.
	Value(key string) (any, bool)

	// StringValue returns the string under key, or "" if the key is
	// missing or not a string.
	StringValue(key string) string

	// BoolValue returns the boolean under key, or false if the key is
	// missing or not a boolean.
	BoolValue(key string) bool

	// IntValue returns the integer under key, or 0 if the key is missing
	// or not an integer.
	IntValue(key string) int

	// SetValue stores a value under key in this view.
	SetValue(key string, value any) error
}
