package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStylesKeepText(t *testing.T) {
	styles := map[string]lipgloss.Style{
		"CategoryHeader": CategoryHeader,
		"Title":          Title,
		"Notice":         Notice,
		"ErrorText":      ErrorText,
		"SuccessText":    SuccessText,
		"HelpText":       HelpText,
	}

	for name, style := range styles {
		t.Run(name, func(t *testing.T) {
			got := style.Render("Work: 1")

			assert.Contains(t, got, "Work: 1")
			assert.NotContains(t, got, "\n", "want a single line")
		})
	}
}

func TestPaletteUsesANSIColors(t *testing.T) {
	for _, c := range []lipgloss.Color{Primary, Secondary, Success, Warning, Error, Ink, Shade} {
		assert.NotEmpty(t, string(c))
		assert.NotRegexp(t, `^#`, string(c), "color should be an ANSI index")
	}
}

func TestDisableColor_RendersPlainText(t *testing.T) {
	DisableColor()

	assert.Equal(t, "Note already exists", Notice.Render("Note already exists"))
	assert.Equal(t, "Work:", CategoryHeader.Render("Work:"))
}
