package hostenv

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
)

// InstallationPath asks the host where this component's deployment package
// is installed and returns the location as a native filesystem path.
//
// The lookup is best effort and never fails: any problem at any step (the
// capability is unavailable, the host call returns an error or panics, the
// returned URL cannot be converted) yields "". Callers must treat "" as
// "unknown" and apply their own fallback.
func InstallationPath(sc ServiceContext) (path string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[HostEnv] ERROR: panic while resolving installation path: %v", r)
			path = ""
		}
	}()

	if sc == nil {
		log.Printf("[HostEnv] ERROR: no service context")
		return ""
	}

	info, err := sc.PackageInfo()
	if err != nil || info == nil {
		log.Printf("[HostEnv] ERROR: failed to obtain package information provider: %v", err)
		return ""
	}

	locationURL, err := info.PackageLocation(PackageID)
	if err != nil {
		log.Printf("[HostEnv] ERROR: failed to look up location of package %s: %v", PackageID, err)
		return ""
	}

	native, err := fileURLToPath(locationURL)
	if err != nil {
		log.Printf("[HostEnv] ERROR: failed to convert package location %q: %v", locationURL, err)
		return ""
	}

	log.Printf("[HostEnv] Installation path: %s", native)
	return native
}

// ConfigGroup opens the configuration subtree named by groupPath through the
// host's configuration provider.
//
// Every stage is checked independently: a missing service factory, a missing
// provider, or a failed view instantiation each short-circuit to (nil, false)
// without attempting the later stages. The instantiation call is additionally
// guarded against panics, since a damaged configuration store may blow up
// inside the host callback. The return value is strictly binary; the abort
// paths are distinguishable only in the diagnostic log.
func ConfigGroup(groupPath string, sc ServiceContext) (ConfigView, bool) {
	if sc == nil {
		log.Printf("[HostEnv] ERROR: no service context")
		return nil, false
	}

	factory, err := sc.ServiceFactory()
	if err != nil || factory == nil {
		log.Printf("[HostEnv] ERROR: failed to obtain service factory: %v", err)
		return nil, false
	}

	provider, err := factory.CreateConfigProvider()
	if err != nil || provider == nil {
		log.Printf("[HostEnv] ERROR: failed to obtain configuration provider: %v", err)
		return nil, false
	}

	view, err := createView(provider, groupPath)
	if err != nil {
		log.Printf("[HostEnv] ERROR: failed to obtain view for %q: %v", groupPath, err)
		return nil, false
	}
	if view == nil {
		log.Printf("[HostEnv] ERROR: provider returned no view for %q", groupPath)
		return nil, false
	}

	return view, true
}

// createView isolates the view instantiation so a panicking host callback is
// mapped to an error instead of unwinding into the caller.
func createView(provider ConfigProvider, nodePath string) (view ConfigView, err error) {
	defer func() {
		if r := recover(); r != nil {
			view = nil
			err = fmt.Errorf("view instantiation panicked: %v", r)
		}
	}()
	return provider.CreateView(nodePath)
}

// fileURLToPath converts a file URL from the host into a native path.
func fileURLToPath(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("not a file URL: %s", fileURL)
	}
	p := u.Path
	if p == "" {
		return "", fmt.Errorf("file URL has no path: %s", fileURL)
	}
	// Windows file URLs carry a leading slash before the drive letter.
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p), nil
}
