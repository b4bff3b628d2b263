// Command regvet reports registry entries that are never stored, expose
// mutable pointers through a value reader or are declared inside functions.
//
//	go run ./cmd/regvet ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/vladislavmarkov/data-registry/internal/analysis/regcheck"
)

func main() {
	singlechecker.Main(regcheck.Analyzer)
}
