// declog-lint is a custom static analyzer for declog performance patterns.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/seanwalsh/declog/tools/declog-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
