package proofread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticEngine struct {
	errors []Error
}

func (e *staticEngine) Errors(text, locale string) []Error {
	return e.errors
}

func TestWindowDropsErrorsBeforeSentence(t *testing.T) {
	result := &Result{StartOfSentence: 10, BehindEndOfSentence: 20}
	raw := []Error{
		{Start: 2, Length: 3, RuleID: "agreement"},
		{Start: 12, Length: 3, RuleID: "agreement"},
	}

	Window(result, raw, nil)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 12, result.Errors[0].Start)
}

func TestWindowStopsAtSentenceEnd(t *testing.T) {
	result := &Result{StartOfSentence: 0, BehindEndOfSentence: 20}
	raw := []Error{
		{Start: 5, Length: 3, RuleID: "a"},
		{Start: 20, Length: 3, RuleID: "b"},
		{Start: 25, Length: 3, RuleID: "c"},
	}

	Window(result, raw, nil)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "a", result.Errors[0].RuleID)
	assert.Equal(t, 20, result.StartOfNextSentence)
}

func TestWindowExtendsEndForOverrunningError(t *testing.T) {
	result := &Result{StartOfSentence: 0, BehindEndOfSentence: 10}
	raw := []Error{
		{Start: 8, Length: 6, RuleID: "runon"},
	}

	Window(result, raw, nil)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 14, result.BehindEndOfSentence)
	assert.Equal(t, 14, result.StartOfNextSentence)
}

func TestWindowSkipsIgnoredRules(t *testing.T) {
	result := &Result{StartOfSentence: 0, BehindEndOfSentence: 30}
	raw := []Error{
		{Start: 1, Length: 2, RuleID: "ignored-rule"},
		{Start: 5, Length: 2, RuleID: "kept-rule"},
	}
	ignored := map[string]struct{}{"ignored-rule": {}}

	Window(result, raw, ignored)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "kept-rule", result.Errors[0].RuleID)
}

func TestWindowIgnoredOverrunStillExtendsWindow(t *testing.T) {
	// Window bookkeeping happens before rule filtering, as an ignored
	// error still belongs to the sentence.
	result := &Result{StartOfSentence: 0, BehindEndOfSentence: 10}
	raw := []Error{
		{Start: 8, Length: 6, RuleID: "ignored-rule"},
	}
	ignored := map[string]struct{}{"ignored-rule": {}}

	Window(result, raw, ignored)

	assert.Empty(t, result.Errors)
	assert.Equal(t, 14, result.BehindEndOfSentence)
}

func TestWindowFillsDetailURL(t *testing.T) {
	result := &Result{Locale: "se", StartOfSentence: 0, BehindEndOfSentence: 10}
	raw := []Error{{Start: 0, Length: 3, RuleID: "msyn-agr"}}

	Window(result, raw, nil)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, DetailURL("se", "msyn-agr"), result.Errors[0].DetailURL)
}

func TestDetailURLUsesLanguageSubtagOnly(t *testing.T) {
	assert.Equal(t,
		"https://lingware.github.io/spellbridge/gchelp/en/typo.html",
		DetailURL("en-US", "typo"))
	assert.Equal(t,
		"https://lingware.github.io/spellbridge/gchelp/se/msyn-agr.html",
		DetailURL("se", "msyn-agr"))
}

func TestProofreadGeneratesDocumentID(t *testing.T) {
	p := NewProofreader(&staticEngine{})

	result := p.Proofread("", "some text", "en-US", 0, 9)

	assert.NotEmpty(t, result.DocumentID)
}

func TestProofreadKeepsSuppliedDocumentID(t *testing.T) {
	p := NewProofreader(&staticEngine{})

	result := p.Proofread("doc-7", "some text", "en-US", 0, 9)

	assert.Equal(t, "doc-7", result.DocumentID)
}

func TestProofreadHonorsIgnoreRule(t *testing.T) {
	engine := &staticEngine{errors: []Error{
		{Start: 0, Length: 4, RuleID: "typo"},
		{Start: 5, Length: 4, RuleID: "agreement"},
	}}
	p := NewProofreader(engine)
	p.IgnoreRule("typo")

	result := p.Proofread("doc", "some text", "en-US", 0, 9)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "agreement", result.Errors[0].RuleID)
}
