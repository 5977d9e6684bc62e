// Package speller is the integration point between suggestion providers and
// the host-facing spelling service. It turns a provider lookup into the
// immutable suggestion carrier the host consumes.
package speller

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lingware/spellbridge/pkg/propmgr"
	"github.com/lingware/spellbridge/pkg/suggestion"
)

// Provider is the seam to the external suggestion engine. Implementations
// own the ranking of suggestions; callers must treat the ordering as opaque
// and never re-rank.
type Provider interface {
	// Lookup reports whether word is known to the dictionary for tag,
	// returning the dictionary's canonical casing for it.
	Lookup(word string, tag language.Tag) (string, bool)

	// Suggest returns replacement candidates for word, best first.
	Suggest(word string, tag language.Tag) []string

	// Supports reports whether a dictionary matching tag is available.
	Supports(tag language.Tag) bool

	// Locales lists the BCP-47 tags the provider can check.
	Locales() []string
}

// Checker checks single words against a provider's dictionaries, honoring
// the linguistic properties of the shared property manager.
type Checker struct {
	provider Provider
	props    *propmgr.Manager
}

// NewChecker creates a Checker. props may be nil, in which case the default
// linguistic properties apply.
func NewChecker(provider Provider, props *propmgr.Manager) *Checker {
	return &Checker{provider: provider, props: props}
}

// Locales lists the BCP-47 tags the checker can handle.
func (c *Checker) Locales() []string {
	return c.provider.Locales()
}

// Check looks up word in the dictionary for localeTag. It returns nil when
// the word is acceptable, or a suggestion carrier when the word is flagged.
// An error is returned only for malformed or unsupported locales; lookup
// results themselves never fail.
func (c *Checker) Check(word, localeTag string) (*suggestion.Result, error) {
	if word == "" {
		return nil, nil
	}

	tag, err := language.Parse(localeTag)
	if err != nil {
		return nil, fmt.Errorf("malformed locale %q: %w", localeTag, err)
	}
	if !c.provider.Supports(tag) {
		return nil, fmt.Errorf("no dictionary for locale %q", localeTag)
	}

	if !c.spellWithDigits() && containsDigit(word) {
		return nil, nil
	}
	if !c.spellUpperCase() && isAllUpper(word) {
		return nil, nil
	}

	canonical, known := c.provider.Lookup(word, tag)
	if known {
		if acceptableCasing(word, canonical) {
			return nil, nil
		}
		return suggestion.New(word, localeTag, suggestion.FailureCaseError, []string{canonical}), nil
	}

	alternatives := c.provider.Suggest(word, tag)
	return suggestion.New(word, localeTag, suggestion.FailureSpelling, alternatives), nil
}

func (c *Checker) spellWithDigits() bool {
	if c.props == nil {
		return false
	}
	return c.props.SpellWithDigits()
}

func (c *Checker) spellUpperCase() bool {
	if c.props == nil {
		return true
	}
	return c.props.SpellUpperCase()
}

// acceptableCasing reports whether word is an accepted casing of the
// canonical dictionary form: the form itself, its title-cased variant
// (sentence-initial position) or its all-uppercase variant (headings,
// acronym styling).
func acceptableCasing(word, canonical string) bool {
	if word == canonical {
		return true
	}
	if word == cases.Title(language.Und).String(canonical) {
		return true
	}
	return word == strings.ToUpper(canonical)
}

func containsDigit(word string) bool {
	for _, r := range word {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func isAllUpper(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
