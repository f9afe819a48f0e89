package export

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

// Highlight writes data to w with ANSI syntax colouring for format.
// Callers decide whether w is a terminal.
func Highlight(w io.Writer, data []byte, format string) error {
	if err := quick.Highlight(w, string(data), format, highlightFormatter, highlightStyle); err != nil {
		return fmt.Errorf("failed to highlight %s output; %w", format, err)
	}
	return nil
}
