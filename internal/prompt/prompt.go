// Package prompt reads interactive confirmations from an input stream.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes question to out and reads a single line from in.
// It returns true only when the answer begins with "y" or "Y"; leading
// whitespace is not skipped.
// End of input or a read failure counts as a negative answer.
func Confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprint(out, question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		// Keep the terminal tidy when input ends without a newline.
		fmt.Fprintln(out)
		return false
	}

	answer := strings.TrimRight(line, "\r\n")
	return strings.HasPrefix(strings.ToLower(answer), "y")
}
