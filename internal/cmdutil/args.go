package cmdutil

import (
	"fmt"
	"strconv"
)

// ParseIndex parses a 1-based note index argument.
// Any integer is accepted; range checks belong to the notebook.
func ParseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q; must be a whole number", arg)
	}
	return index, nil
}
