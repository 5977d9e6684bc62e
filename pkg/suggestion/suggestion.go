// Package suggestion defines the carrier for spelling alternatives that is
// handed from the suggestion engine to the host application.
package suggestion

// FailureKind classifies why a word was flagged as needing correction.
type FailureKind int

const (
	// FailureNone means the word was not flagged.
	FailureNone FailureKind = iota
	// FailureSpelling means the word is unknown to the active dictionary.
	FailureSpelling
	// FailureCaseError means the word is known but capitalized incorrectly.
	FailureCaseError
	// FailureForeignWord means the word belongs to another language.
	FailureForeignWord
	// FailureNegativeWord means the word is on the exclusion list.
	FailureNegativeWord
)

// String returns a human-readable name for the failure kind
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureSpelling:
		return "spelling error"
	case FailureCaseError:
		return "capitalization error"
	case FailureForeignWord:
		return "foreign word"
	case FailureNegativeWord:
		return "negative word"
	default:
		return "unknown"
	}
}

// Result carries one flagged word together with its ranked alternatives.
// Alternatives keep the producer's order, best candidate first; the carrier
// never re-ranks them. A Result cannot change after construction, so it is
// safe to share between goroutines without locking. A caller that needs
// different suggestions must obtain a new Result from the producer.
type Result struct {
	word         string
	locale       string
	failure      FailureKind
	alternatives []string
}

// New creates a Result. The alternatives slice is copied, so later changes
// made by the caller do not reach the carrier.
func New(word, locale string, failure FailureKind, alternatives []string) *Result {
	alts := make([]string, len(alternatives))
	copy(alts, alternatives)
	return &Result{
		word:         word,
		locale:       locale,
		failure:      failure,
		alternatives: alts,
	}
}

// Word returns the original flagged word.
func (r *Result) Word() string {
	return r.word
}

// Locale returns the BCP-47 language tag the word was checked against.
func (r *Result) Locale() string {
	return r.locale
}

// FailureKind returns the classification of why the word was flagged.
func (r *Result) FailureKind() FailureKind {
	return r.failure
}

// AlternativesCount returns the number of replacement candidates.
func (r *Result) AlternativesCount() int {
	return len(r.alternatives)
}

// Alternatives returns the replacement candidates in producer order. The
// returned slice is a copy; mutating it does not affect the Result.
func (r *Result) Alternatives() []string {
	alts := make([]string, len(r.alternatives))
	copy(alts, r.alternatives)
	return alts
}
