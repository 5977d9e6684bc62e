package hostenv

import "sync"

// bridgeMutex serializes access to process-wide bootstrap state: the
// one-time initialization flag and the shared property manager handle that
// live in the propmgr package. It is created with the process and never
// torn down.
var bridgeMutex sync.Mutex

// BridgeMutex returns the process-wide bootstrap mutex. Any lazy
// initialization of shared bridge state must hold it so that at most one
// initialization sequence runs even when the host calls in from several
// threads at once.
func BridgeMutex() *sync.Mutex {
	return &bridgeMutex
}
