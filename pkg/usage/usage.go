// Package usage records per-tool invocation counts and timings for the
// bridge's host-facing tools.
package usage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// ToolUsage is the recorded usage of one tool.
type ToolUsage struct {
	Calls         int           `json:"calls"`
	Failures      int           `json:"failures"`
	TotalDuration time.Duration `json:"total_duration_ns"`
}

// Tracker accumulates tool usage for one server process.
type Tracker struct {
	mu       sync.Mutex
	filePath string
	tools    map[string]*ToolUsage
}

var (
	// Global tracker instance
	globalTracker *Tracker
)

// InitTracker initializes the global tracker, persisting to dataDir.
func InitTracker(dataDir string) error {
	t := &Tracker{
		filePath: filepath.Join(dataDir, "usage.json"),
		tools:    make(map[string]*ToolUsage),
	}
	if data, err := os.ReadFile(t.filePath); err == nil {
		if err := json.Unmarshal(data, &t.tools); err != nil {
			return fmt.Errorf("corrupt usage file %s: %w", t.filePath, err)
		}
	}
	globalTracker = t
	return nil
}

// GetTracker returns the global tracker, or nil before InitTracker.
func GetTracker() *Tracker {
	return globalTracker
}

// Record adds one invocation of a tool.
func (t *Tracker) Record(toolName string, duration time.Duration, failed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	u, ok := t.tools[toolName]
	if !ok {
		u = &ToolUsage{}
		t.tools[toolName] = u
	}
	u.Calls++
	if failed {
		u.Failures++
	}
	u.TotalDuration += duration
}

// Save writes the accumulated usage to disk.
func (t *Tracker) Save() error {
	t.mu.Lock()
	data, err := json.MarshalIndent(t.tools, "", "  ")
	t.mu.Unlock()
	if err != nil {
		return err
	}
	return os.WriteFile(t.filePath, data, 0644)
}

// Format renders the usage as a text report, tools sorted by name.
func (t *Tracker) Format() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, 0, len(t.tools))
	for name := range t.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Tool usage:\n")
	for _, name := range names {
		u := t.tools[name]
		b.WriteString(fmt.Sprintf("  %s: %d calls, %d failures, %v total\n",
			name, u.Calls, u.Failures, u.TotalDuration))
	}
	return b.String()
}
