// Package analyzers provides all custom static analyzers for declog.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/seanwalsh/declog/tools/declog-lint/analyzers/loopcall"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopcall.Analyzer,
	}
}
