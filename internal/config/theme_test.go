package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultThemeValid(t *testing.T) {
	assert.NoError(t, DefaultTheme().Validate())
}

func TestResolvedDerivesCurrentLine(t *testing.T) {
	th := DefaultTheme().Resolved()
	assert.NotEmpty(t, th.CurrentLine)
	assert.NotEqual(t, th.Background, th.CurrentLine)
	assert.NoError(t, th.Validate())
}

func TestResolvedKeepsExplicitCurrentLine(t *testing.T) {
	th := DefaultTheme()
	th.CurrentLine = "#123456"
	assert.Equal(t, "#123456", th.Resolved().CurrentLine)
}

func TestDeriveCurrentLine(t *testing.T) {
	assert.Equal(t, "#000000", DeriveCurrentLine("#000000", "#000000"))
	assert.Equal(t, "", DeriveCurrentLine("nope", "#000000"))
	assert.Equal(t, "", DeriveCurrentLine("#000000", ""))
}
