// Package proofread carries grammar-checking results between a grammar
// engine and the host. The engine reports errors over a whole paragraph;
// this package windows them to the sentence the host asked about and
// attaches detail links, leaving the error detection itself to the engine.
package proofread

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// detailURLBase is the root of the per-rule help pages linked from each
// reported error.
const detailURLBase = "https://lingware.github.io/spellbridge/gchelp"

// Error is one grammar error inside a checked text.
type Error struct {
	Start        int
	Length       int
	RuleID       string
	ShortComment string
	FullComment  string
	Suggestions  []string
	DetailURL    string
}

// Result is the outcome of proofreading one sentence of a document.
type Result struct {
	DocumentID          string
	Text                string
	Locale              string
	StartOfSentence     int
	BehindEndOfSentence int
	StartOfNextSentence int
	Errors              []Error
}

// Engine is the seam to the external grammar engine. It reports every error
// found in text, in text order, without any windowing.
type Engine interface {
	Errors(text, locale string) []Error
}

// Proofreader windows engine errors to the sentence the host asked about
// and filters rules the user chose to ignore.
type Proofreader struct {
	mu      sync.Mutex
	engine  Engine
	ignored map[string]struct{}
}

// NewProofreader creates a Proofreader over the given engine.
func NewProofreader(engine Engine) *Proofreader {
	return &Proofreader{
		engine:  engine,
		ignored: make(map[string]struct{}),
	}
}

// IgnoreRule suppresses all future errors carrying the given rule
// identifier.
func (p *Proofreader) IgnoreRule(ruleID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ignored[ruleID] = struct{}{}
}

// Proofread checks the sentence of text between start and behindEnd. When
// the host supplies no document identifier, one is generated so results
// from the same document can be correlated.
func (p *Proofreader) Proofread(docID, text, locale string, start, behindEnd int) *Result {
	if docID == "" {
		docID = uuid.NewString()
	}
	result := &Result{
		DocumentID:          docID,
		Text:                text,
		Locale:              locale,
		StartOfSentence:     start,
		BehindEndOfSentence: behindEnd,
	}

	raw := p.engine.Errors(text, locale)
	p.mu.Lock()
	ignored := make(map[string]struct{}, len(p.ignored))
	for r := range p.ignored {
		ignored[r] = struct{}{}
	}
	p.mu.Unlock()

	Window(result, raw, ignored)
	log.Printf("[Proofread] Document %s: %d errors in window [%d,%d)",
		docID, len(result.Errors), result.StartOfSentence, result.BehindEndOfSentence)
	return result
}

// Window filters raw errors into the sentence window of result. Errors
// before the sentence start are dropped; the scan stops at the first error
// beginning at or after the window end; an in-window error that overruns
// the end extends the window to cover it; ignored rules are skipped after
// the window bookkeeping. StartOfNextSentence ends up at the (possibly
// extended) window end. Raw errors must arrive in text order.
func Window(result *Result, raw []Error, ignored map[string]struct{}) {
	for _, e := range raw {
		if e.Start < result.StartOfSentence {
			continue
		}
		if e.Start >= result.BehindEndOfSentence {
			break
		}
		if e.Start+e.Length > result.BehindEndOfSentence {
			result.BehindEndOfSentence = e.Start + e.Length
		}
		if _, skip := ignored[e.RuleID]; skip {
			continue
		}
		if e.DetailURL == "" {
			e.DetailURL = DetailURL(result.Locale, e.RuleID)
		}
		result.Errors = append(result.Errors, e)
	}
	result.StartOfNextSentence = result.BehindEndOfSentence
}

// DetailURL returns the help page for one rule in one language. Help pages
// are organized by language alone, so only the language subtag of the
// locale goes into the URL.
func DetailURL(locale, ruleID string) string {
	lang, _, _ := strings.Cut(locale, "-")
	return fmt.Sprintf("%s/%s/%s.html", detailURLBase, lang, ruleID)
}
