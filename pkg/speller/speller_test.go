package speller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/lingware/spellbridge/pkg/suggestion"
)

func TestCheckCorrectWord(t *testing.T) {
	checker := NewChecker(NewFuzzyProvider(), nil)

	res, err := checker.Check("hello", "en-US")

	require.NoError(t, err)
	assert.Nil(t, res, "correct words report no issue")
}

func TestCheckEmptyWord(t *testing.T) {
	checker := NewChecker(NewFuzzyProvider(), nil)

	res, err := checker.Check("", "en-US")

	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCheckMisspelledWord(t *testing.T) {
	checker := NewChecker(NewFuzzyProvider(), nil)

	res, err := checker.Check("teh", "en-US")

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "teh", res.Word())
	assert.Equal(t, "en-US", res.Locale())
	assert.Equal(t, suggestion.FailureSpelling, res.FailureKind())
	assert.Contains(t, res.Alternatives(), "the")
}

func TestCheckCaseError(t *testing.T) {
	checker := NewChecker(NewFuzzyProvider(), nil)

	res, err := checker.Check("london", "en-US")

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, suggestion.FailureCaseError, res.FailureKind())
	require.Equal(t, 1, res.AlternativesCount())
	assert.Equal(t, "London", res.Alternatives()[0])
}

func TestCheckAcceptedCasings(t *testing.T) {
	checker := NewChecker(NewFuzzyProvider(), nil)

	for _, word := range []string{"the", "The", "THE", "London", "LONDON"} {
		res, err := checker.Check(word, "en-US")
		require.NoError(t, err)
		assert.Nil(t, res, "%q must be accepted", word)
	}
}

func TestCheckMixedCaseFlagged(t *testing.T) {
	checker := NewChecker(NewFuzzyProvider(), nil)

	res, err := checker.Check("tHe", "en-US")

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, suggestion.FailureCaseError, res.FailureKind())
	assert.Equal(t, []string{"the"}, res.Alternatives())
}

func TestCheckSkipsWordsWithDigits(t *testing.T) {
	// Default properties: words containing digits are not checked
	checker := NewChecker(NewFuzzyProvider(), nil)

	res, err := checker.Check("utf8ish", "en-US")

	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCheckAcceptsUnknownAcronymsByDefaultPolicy(t *testing.T) {
	// Default properties check all-caps words, so an unknown acronym is
	// flagged as a spelling error.
	checker := NewChecker(NewFuzzyProvider(), nil)

	res, err := checker.Check("QZXV", "en-US")

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, suggestion.FailureSpelling, res.FailureKind())
}

func TestCheckMalformedLocale(t *testing.T) {
	checker := NewChecker(NewFuzzyProvider(), nil)

	res, err := checker.Check("hello", "not a locale!!")

	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestCheckUnsupportedLocale(t *testing.T) {
	checker := NewChecker(NewFuzzyProvider(), nil)

	res, err := checker.Check("bonjour", "fr-FR")

	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestFuzzyProviderLookup(t *testing.T) {
	p := NewFuzzyProvider()

	canonical, known := p.Lookup("London", language.AmericanEnglish)
	require.True(t, known)
	assert.Equal(t, "London", canonical)

	canonical, known = p.Lookup("LONDON", language.AmericanEnglish)
	require.True(t, known)
	assert.Equal(t, "London", canonical)

	_, known = p.Lookup("qwxzv", language.AmericanEnglish)
	assert.False(t, known)
}

func TestFuzzyProviderLocaleMatching(t *testing.T) {
	p := NewFuzzyProvider()

	// Plain English and British English both match the en-US dictionary
	assert.True(t, p.Supports(language.English))
	assert.True(t, p.Supports(language.BritishEnglish))
	assert.False(t, p.Supports(language.French))
}

func TestFuzzyProviderTrainNewLanguage(t *testing.T) {
	p := NewFuzzyProvider()
	p.Train(language.Finnish, []string{"kissa", "koira", "talo"})

	assert.True(t, p.Supports(language.Finnish))

	canonical, known := p.Lookup("kissa", language.Finnish)
	require.True(t, known)
	assert.Equal(t, "kissa", canonical)

	assert.Equal(t, []string{"en-US", "fi"}, p.Locales())
}

func TestFuzzyProviderSuggestionsAreCanonicallyCased(t *testing.T) {
	p := NewFuzzyProvider()

	suggestions := p.Suggest("londen", language.AmericanEnglish)
	assert.Contains(t, suggestions, "London")
}
