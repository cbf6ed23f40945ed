// SPDX-License-Identifier: Apache-2.0
package diag

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Setheum-Labs/solang/internal/ast"
)

func TestSetDeduplicatesStructurally(t *testing.T) {
	set := NewSet()

	pos := ast.Position{File: 0, Line: 3, Column: 5}
	set.Insert(Errorf(pos, "missing arguments to base contract ‘A’ constructor"))
	set.Insert(Errorf(pos, "missing arguments to base contract ‘A’ constructor"))
	set.Insert(Errorf(pos, "missing arguments to base contract ‘B’ constructor"))

	require.Len(t, set.All(), 2, "identical diagnostics collapse")
	assert.Contains(t, set.All()[0].Message, "‘A’")
	assert.Contains(t, set.All()[1].Message, "‘B’")
}

func TestSetDistinguishesNotes(t *testing.T) {
	set := NewSet()

	pos := ast.Position{File: 0, Line: 1, Column: 1}
	notePos := ast.Position{File: 0, Line: 2, Column: 1}
	otherPos := ast.Position{File: 0, Line: 9, Column: 1}

	set.Insert(ErrorWithNote(pos, "already defined ‘x’", notePos, "previous definition of ‘x’"))
	set.Insert(ErrorWithNote(pos, "already defined ‘x’", otherPos, "previous definition of ‘x’"))

	assert.Len(t, set.All(), 2, "different note positions are different diagnostics")
}

func TestHasErrorsIgnoresLowerSeverities(t *testing.T) {
	var ds Diagnostics
	ds.Push(Debugf(ast.Position{Line: 1, Column: 1}, "found contract ‘C’"))
	ds.Push(Warningf(ast.Position{Line: 1, Column: 1}, "something looks off"))
	assert.False(t, ds.HasErrors())

	ds.Push(Errorf(ast.Position{Line: 1, Column: 1}, "broken"))
	assert.True(t, ds.HasErrors())
}

func TestReporterFormat(t *testing.T) {
	color.NoColor = true

	source := "contract A {}\ncontract B is A, A {}\n"
	reporter := NewReporter([]string{"dup.sol"}, map[int]string{0: source})

	d := ErrorWithNote(
		ast.Position{File: 0, Line: 2, Column: 18},
		"contract ‘B’ duplicate base ‘A’",
		ast.Position{File: 0, Line: 2, Column: 15},
		"previous definition of ‘A’")

	out := reporter.Format(d)
	assert.Contains(t, out, "error: contract ‘B’ duplicate base ‘A’")
	assert.Contains(t, out, "dup.sol:2:18")
	assert.Contains(t, out, "contract B is A, A {}")
	assert.Contains(t, out, "note: previous definition of ‘A’")
}

func TestReporterSkipsDebugUnlessVerbose(t *testing.T) {
	color.NoColor = true

	reporter := NewReporter([]string{"t.sol"}, map[int]string{0: "contract C {}\n"})

	var ds Diagnostics
	ds.Push(Debugf(ast.Position{File: 0, Line: 1, Column: 1}, "found contract ‘C’"))

	var quiet strings.Builder
	reporter.Print(&quiet, ds)
	assert.Empty(t, quiet.String())

	reporter.Verbose = true
	var loud strings.Builder
	reporter.Print(&loud, ds)
	assert.Contains(t, loud.String(), "found contract ‘C’")
}
