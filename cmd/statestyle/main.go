// Command statestyle resolves and previews state-dependent widget styles.
package main

import (
	"os"

	"github.com/opencode-ai/statestyle/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
