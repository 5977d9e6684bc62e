package propmgr

import "github.com/lingware/spellbridge/pkg/hostenv"

// Process-wide bootstrap state, guarded by hostenv.BridgeMutex. Established
// at most once per process and torn down only at process exit.
var (
	initialized bool
	shared      *Manager
)

// Instance returns the process-wide property manager, creating it on first
// use with the given service context. Initialization runs at most once even
// when called from many goroutines at the same time; later calls return the
// same handle and ignore their context argument.
func Instance(sc hostenv.ServiceContext) *Manager {
	mu := hostenv.BridgeMutex()
	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		shared = NewManager(sc)
		initialized = true
	}
	return shared
}
