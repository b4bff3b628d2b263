// Command statics runs the registry demo, manages the persisted state entry,
// generates entry sets and compares binary sizes.
package main

import (
	"os"

	"github.com/vladislavmarkov/data-registry/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
