// Package propmgr holds the linguistic properties shared by the spelling
// and hyphenation services: message language, digit and uppercase checking,
// hyphenation minimums and the preferred dictionary variant. Settings are
// read from the host's configuration store through hostenv; every failed
// read falls back to the built-in default silently.
package propmgr

import (
	"log"
	"sync"

	"github.com/lingware/spellbridge/pkg/hostenv"
)

// ConfigGroupRoot names the configuration subtree that stores this
// component's settings in the host registry.
const ConfigGroupRoot = "org.lingware.spellbridge.Config"

// ServiceEvent is a bitmask telling service consumers which linguistic
// results must be recomputed after a property change.
type ServiceEvent int

const (
	// EventSpellCorrectAgain requests re-checking of words previously
	// accepted as correct.
	EventSpellCorrectAgain ServiceEvent = 1 << iota
	// EventSpellWrongAgain requests re-checking of words previously
	// flagged as wrong.
	EventSpellWrongAgain
	// EventHyphenateAgain requests re-hyphenation.
	EventHyphenateAgain
	// EventProofreadAgain requests re-proofreading.
	EventProofreadAgain
)

// EventListener receives service events after property changes.
type EventListener interface {
	ProcessServiceEvent(event ServiceEvent)
}

// Manager owns the linguistic properties. The host may call it from any
// thread, so all state is mutex-protected.
type Manager struct {
	mu sync.Mutex
	sc hostenv.ServiceContext

	messageLanguage   string
	spellWithDigits   bool
	spellUpperCase    bool
	hyphMinLeading    int
	hyphMinTrailing   int
	hyphMinWordLength int
	hyphWordParts     bool
	hyphUnknownWords  bool
	dictVariant       string

	listeners map[EventListener]struct{}
}

// NewManager creates a Manager bound to the given service context and loads
// the initial settings from the host configuration store. Missing or broken
// configuration leaves the defaults in place.
func NewManager(sc hostenv.ServiceContext) *Manager {
	m := &Manager{
		sc:                sc,
		messageLanguage:   "en-US",
		spellWithDigits:   false,
		spellUpperCase:    true,
		hyphMinLeading:    2,
		hyphMinTrailing:   2,
		hyphMinWordLength: 5,
		hyphWordParts:     false,
		hyphUnknownWords:  true,
		listeners:         make(map[EventListener]struct{}),
	}
	m.mu.Lock()
	m.readSettings()
	m.mu.Unlock()
	log.Printf("[PropMgr] Property manager initialized")
	return m
}

// readSettings refreshes all settings from the configuration store. Callers
// must hold m.mu.
func (m *Manager) readSettings() {
	if lang, ok := m.readString("general", "messageLanguage"); ok && lang != "" {
		m.messageLanguage = lang
	}
	if v, ok := m.readBool("spelling", "spellWithDigits"); ok {
		m.spellWithDigits = v
	}
	if v, ok := m.readBool("spelling", "spellUpperCase"); ok {
		m.spellUpperCase = v
	}
	if v, ok := m.readBool("hyphenator", "hyphWordParts"); ok {
		m.hyphWordParts = v
	}
	if v, ok := m.readBool("hyphenator", "hyphUnknownWords"); ok {
		m.hyphUnknownWords = v
	}
	if v, ok := m.readString("dictionary", "variant"); ok {
		m.dictVariant = v
	}
}

// readBool reads one boolean from a configuration subgroup. Callers must
// hold m.mu.
func (m *Manager) readBool(group, key string) (bool, bool) {
	view, ok := hostenv.ConfigGroup(ConfigGroupRoot+"/"+group, m.sc)
	if !ok {
		log.Printf("[PropMgr] Using default for %s/%s", group, key)
		return false, false
	}
	raw, ok := view.Value(key)
	if !ok {
		return false, false
	}
	v, ok := raw.(bool)
	if !ok {
		return view.BoolValue(key), true
	}
	return v, true
}

// readString reads one string from a configuration subgroup. Callers must
// hold m.mu.
func (m *Manager) readString(group, key string) (string, bool) {
	view, ok := hostenv.ConfigGroup(ConfigGroupRoot+"/"+group, m.sc)
	if !ok {
		log.Printf("[PropMgr] Using default for %s/%s", group, key)
		return "", false
	}
	if _, ok := view.Value(key); !ok {
		return "", false
	}
	return view.StringValue(key), true
}

// MessageLanguage returns the language used for user-visible messages.
func (m *Manager) MessageLanguage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messageLanguage
}

// SpellWithDigits reports whether words containing digits are checked.
func (m *Manager) SpellWithDigits() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.spellWithDigits
}

// SpellUpperCase reports whether all-uppercase words are checked.
func (m *Manager) SpellUpperCase() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.spellUpperCase
}

// HyphMinLeading returns the minimum characters before a hyphenation break.
func (m *Manager) HyphMinLeading() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hyphMinLeading
}

// HyphMinTrailing returns the minimum characters after a hyphenation break.
func (m *Manager) HyphMinTrailing() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hyphMinTrailing
}

// HyphMinWordLength returns the minimum word length for hyphenation. When
// word-part hyphenation is disabled the effective minimum drops to 2.
func (m *Manager) HyphMinWordLength() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hyphWordParts {
		return m.hyphMinWordLength
	}
	return 2
}

// HyphUnknownWords reports whether unknown words are hyphenated.
func (m *Manager) HyphUnknownWords() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hyphUnknownWords
}

// DictVariant returns the preferred dictionary variant, "" for default.
func (m *Manager) DictVariant() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dictVariant
}

// SetSpellWithDigits changes digit checking and notifies listeners.
func (m *Manager) SetSpellWithDigits(v bool) {
	m.mu.Lock()
	m.spellWithDigits = v
	m.mu.Unlock()
	m.notify(EventSpellCorrectAgain | EventSpellWrongAgain | EventProofreadAgain)
}

// SetSpellUpperCase changes uppercase checking and notifies listeners.
func (m *Manager) SetSpellUpperCase(v bool) {
	m.mu.Lock()
	m.spellUpperCase = v
	m.mu.Unlock()
	m.notify(EventSpellCorrectAgain | EventSpellWrongAgain | EventProofreadAgain)
}

// AddEventListener registers a listener. It returns false when the listener
// is already registered.
func (m *Manager) AddEventListener(l EventListener) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.listeners[l]; ok {
		return false
	}
	m.listeners[l] = struct{}{}
	return true
}

// RemoveEventListener removes a listener. It returns false when the
// listener was not registered.
func (m *Manager) RemoveEventListener(l EventListener) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.listeners[l]; !ok {
		return false
	}
	delete(m.listeners, l)
	return true
}

// Reload re-reads the settings from the configuration store and sends an
// event carrying only the bits whose values actually changed.
func (m *Manager) Reload() {
	var event ServiceEvent
	m.mu.Lock()
	if v, ok := m.readBool("hyphenator", "hyphWordParts"); ok && v != m.hyphWordParts {
		m.hyphWordParts = v
		event |= EventHyphenateAgain
	}
	if v, ok := m.readBool("hyphenator", "hyphUnknownWords"); ok && v != m.hyphUnknownWords {
		m.hyphUnknownWords = v
		event |= EventHyphenateAgain
	}
	if v, ok := m.readString("dictionary", "variant"); ok && v != m.dictVariant {
		m.dictVariant = v
		event |= EventSpellCorrectAgain | EventSpellWrongAgain | EventProofreadAgain
	}
	m.mu.Unlock()
	m.notify(event)
}

// notify sends an event to every registered listener.
func (m *Manager) notify(event ServiceEvent) {
	m.mu.Lock()
	listeners := make([]EventListener, 0, len(m.listeners))
	for l := range m.listeners {
		listeners = append(listeners, l)
	}
	m.mu.Unlock()
	for _, l := range listeners {
		l.ProcessServiceEvent(event)
	}
}
