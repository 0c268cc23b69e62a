package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPlain(t *testing.T) {
	u := Plain()

	assert.Equal(t, "", u(0), "zero leaves the name unadorned")
	assert.Equal(t, "", u(-3), "negative numbers leave the name unadorned")
	assert.Equal(t, " 1", u(1))
	assert.Equal(t, " 42", u(42))
	assert.Equal(t, " 1234", u(1234), "plain suffixes have no digit grouping")
}

func TestLocale(t *testing.T) {
	english := Locale(language.English)
	assert.Equal(t, "", english(0))
	assert.Equal(t, " 7", english(7))
	assert.Equal(t, " 1,234", english(1234))

	german := Locale(language.German)
	assert.Equal(t, " 1.234", german(1234))
}

func TestForLocale(t *testing.T) {
	assert.Equal(t, " 1.234", ForLocale("de")(1234))
	assert.Equal(t, " 1,234", ForLocale("en-US")(1234))

	// Blank and unparseable tags fall back to plain digits.
	assert.Equal(t, " 1234", ForLocale("")(1234))
	assert.Equal(t, " 1234", ForLocale("not a tag")(1234))
}

func TestAppendix(t *testing.T) {
	assert.Equal(t, "", Appendix(0, Plain()))
	assert.Equal(t, "", Appendix(-1, nil))
	assert.Equal(t, " 5", Appendix(5, nil), "nil strategy falls back to plain digits")
	assert.Equal(t, " 1.234", Appendix(1234, Locale(language.German)))
}
