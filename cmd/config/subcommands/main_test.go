package subcommands

import (
	"os"
	"testing"

	"github.com/leefowlercu/noots/internal/tui/styles"
)

func TestMain(m *testing.M) {
	styles.DisableColor()
	os.Exit(m.Run())
}
