package speller

import (
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/sajari/fuzzy"
	"golang.org/x/text/language"
)

// maxSuggestions caps the number of candidates requested from the fuzzy
// model for one word.
const maxSuggestions = 8

// langModel pairs a trained fuzzy model with the canonical casing of each
// trained word, keyed by its lowercased form.
type langModel struct {
	model *fuzzy.Model
	vocab map[string]string
}

// FuzzyProvider is a Provider backed by sajari/fuzzy models, one per
// language. A new provider knows American English from the embedded
// dictionary; further languages are registered with Train.
type FuzzyProvider struct {
	mu      sync.RWMutex
	models  map[language.Tag]*langModel
	tags    []language.Tag
	matcher language.Matcher
}

// NewFuzzyProvider creates a provider trained with the embedded English
// dictionary.
func NewFuzzyProvider() *FuzzyProvider {
	p := &FuzzyProvider{models: make(map[language.Tag]*langModel)}
	p.Train(language.AmericanEnglish, loadEmbeddedDictionary())
	return p
}

// Train registers words for a language, creating its model when needed.
// Words are stored with their given casing; lookups are case-folded.
func (p *FuzzyProvider) Train(tag language.Tag, words []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	lm, ok := p.models[tag]
	if !ok {
		model := fuzzy.NewModel()
		model.SetDepth(2)     // Maximum edit distance
		model.SetThreshold(1) // Minimum frequency threshold
		lm = &langModel{model: model, vocab: make(map[string]string)}
		p.models[tag] = lm
		p.tags = append(p.tags, tag)
		p.matcher = language.NewMatcher(p.tags)
	}

	trained := 0
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		lower := strings.ToLower(word)
		lm.model.TrainWord(lower)
		if _, seen := lm.vocab[lower]; !seen {
			lm.vocab[lower] = word
		}
		trained++
	}
	log.Printf("[Speller] Trained model for %v with %d words", tag, trained)
}

// Lookup implements Provider.
func (p *FuzzyProvider) Lookup(word string, tag language.Tag) (string, bool) {
	lm := p.modelFor(tag)
	if lm == nil {
		return "", false
	}
	canonical, ok := lm.vocab[strings.ToLower(word)]
	return canonical, ok
}

// Suggest implements Provider. Candidates come back in the model's ranked
// order, mapped to their canonical casing.
func (p *FuzzyProvider) Suggest(word string, tag language.Tag) []string {
	lm := p.modelFor(tag)
	if lm == nil {
		return nil
	}
	ranked := lm.model.SpellCheckSuggestions(strings.ToLower(word), maxSuggestions)
	suggestions := make([]string, 0, len(ranked))
	for _, s := range ranked {
		if canonical, ok := lm.vocab[s]; ok {
			suggestions = append(suggestions, canonical)
		} else {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}

// Supports reports whether the provider has a dictionary matching tag.
func (p *FuzzyProvider) Supports(tag language.Tag) bool {
	return p.modelFor(tag) != nil
}

// Locales implements Provider.
func (p *FuzzyProvider) Locales() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	locales := make([]string, 0, len(p.tags))
	for _, tag := range p.tags {
		locales = append(locales, tag.String())
	}
	sort.Strings(locales)
	return locales
}

// modelFor resolves the model whose language best matches tag, or nil when
// no registered language matches at all.
func (p *FuzzyProvider) modelFor(tag language.Tag) *langModel {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.matcher == nil {
		return nil
	}
	_, index, confidence := p.matcher.Match(tag)
	if confidence == language.No {
		return nil
	}
	return p.models[p.tags[index]]
}
