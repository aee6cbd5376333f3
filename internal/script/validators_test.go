package script_test

import (
	"testing"

	"cyclels/internal/registry"
	"cyclels/internal/script"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diag(from, to int, message string) script.Diagnostic {
	return script.Diagnostic{
		Severity: script.SeverityError,
		Range: script.Range{
			Start: script.Position{Line: 0, Character: from},
			End:   script.Position{Line: 0, Character: to},
		},
		Message: message,
	}
}

func newChecker(t *testing.T) *script.Checker {
	t.Helper()
	checker, err := script.NewChecker(registry.Default())
	require.NoError(t, err)
	return checker
}

func TestNewCheckerArity(t *testing.T) {
	tests := []struct {
		name  string
		table string
		err   error
	}{
		{
			name:  "matching arity",
			table: "- name: MOVETO\n  args: [number, number]\n- name: WAIT\n  args: [nonNegativeInteger]\n",
		},
		{
			name:  "single value command declared with two arguments",
			table: "- name: WAIT\n  args: [nonNegativeInteger, number]\n",
			err:   script.ErrArityMismatch,
		},
		{
			name:  "pair command declared with one argument",
			table: "- name: WITHPARAM\n  args: [quotedString]\n",
			err:   script.ErrArityMismatch,
		},
		{
			name:  "command without a validator",
			table: "- name: HOLD\n  args: [number, number, number]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := registry.Load([]byte(tt.table))
			require.NoError(t, err)

			checker, err := script.NewChecker(reg)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, checker)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, checker)
		})
	}
}

func TestValidators(t *testing.T) {
	checker := newChecker(t)

	tests := []struct {
		line     string
		expected []script.Diagnostic
	}{
		// MOVETO
		{"MOVETO(1,2)", nil},
		{"MOVETO( 1.5 , -2e3 )", nil},
		{"MOVETO(0x1F,Infinity)", nil},
		{"MOVETO()", []script.Diagnostic{diag(0, 0, "MOVETO should have 2 values (received 0)")}},
		{"MOVETO(1)", []script.Diagnostic{diag(0, 0, "MOVETO should have 2 values (received 1)")}},
		{"MOVETO(1,2,3)", []script.Diagnostic{diag(0, 0, "MOVETO should have 2 values (received 3)")}},
		{"MOVETO(a,2)", []script.Diagnostic{diag(0, 0, "MOVETO values should be numbers (received `a` and `2`)")}},
		{"MOVETO", []script.Diagnostic{diag(0, 0, "MOVETO should have 2 values (received 0)")}},

		// ATSPEED
		{"ATSPEED(AUTO)", nil},
		{"ATSPEED(12.5)", nil},
		{"ATSPEED(0)", nil},
		{"ATSPEED()", []script.Diagnostic{diag(0, 0, "ATSPEED should have 1 value (received 0)")}},
		{"ATSPEED(-5)", []script.Diagnostic{diag(8, 10, "ATSPEED value should be a positive number (received `-5`)")}},
		{"ATSPEED(foo)", []script.Diagnostic{diag(8, 11, "ATSPEED value should be a number or AUTO (received `foo`)")}},
		{"ATSPEED(ATSPEED(1))", []script.Diagnostic{
			diag(8, 17, "ATSPEED value should be a number or AUTO (received `ATSPEED(1`)"),
			diag(0, 0, "ATSPEED should have 1 value (received 0)"),
		}},

		// WITHHDOP
		{"WITHHDOP(0.5)", nil},
		{"WITHHDOP(1)", nil},
		{"WITHHDOP(1.5)", []script.Diagnostic{diag(9, 12, "WITHHDOP value should be a between 0 and 1 (received `1.5`)")}},
		{"WITHHDOP(-0.1)", []script.Diagnostic{diag(9, 13, "WITHHDOP value should be a between 0 and 1 (received `-0.1`)")}},
		{"WITHHDOP(AUTO)", []script.Diagnostic{diag(9, 13, "WITHHDOP value should be a number or AUTO (received `AUTO`)")}},

		// WITHSATELLITES
		{"WITHSATELLITES(8)", nil},
		{"WITHSATELLITES(0)", nil},
		{"WITHSATELLITES(-1)", []script.Diagnostic{diag(15, 17, "WITHSATELLITES value should be a number (received `-1`)")}},
		{"WITHSATELLITES()", []script.Diagnostic{diag(0, 0, "WITHSATELLITES should have 1 value (received 0)")}},

		// WITHALTITUDE
		{"WITHALTITUDE(120)", nil},
		{"WITHALTITUDE(12.5)", []script.Diagnostic{diag(13, 17, "WITHALTITUDE value should be a number (received `12.5`)")}},

		// WITHPARAM
		{`WITHPARAM("speed",10)`, nil},
		{`WITHPARAM("flag",true)`, nil},
		{`WITHPARAM(speed,10)`, []script.Diagnostic{diag(10, 15, `WITHPARAM parameter name should start and end with "`)}},
		{`WITHPARAM(,10)`, []script.Diagnostic{diag(10, 10, "WITHPARAM parameter name should not be empty")}},
		{`WITHPARAM("a",)`, []script.Diagnostic{diag(14, 14, "WITHPARAM parameter name should not be empty")}},
		{`WITHPARAM(,)`, []script.Diagnostic{
			diag(10, 10, "WITHPARAM parameter name should not be empty"),
			diag(11, 11, "WITHPARAM parameter name should not be empty"),
		}},
		{`WITHPARAM("a")`, []script.Diagnostic{diag(0, 0, "WITHPARAM should have 2 values (received 1)")}},
		{`WITHPARAM()`, []script.Diagnostic{diag(0, 0, "WITHPARAM should have 2 values (received 0)")}},

		// WAIT
		{"WAIT(5)", nil},
		{"WAIT(1)", nil},
		{"WAIT(0)", []script.Diagnostic{diag(5, 6, "WAIT value should be greater than 1 (received `0`)")}},
		{"WAIT(abc)", []script.Diagnostic{diag(5, 8, "WAIT value should be a number (received `abc`)")}},
		{"WAIT()", []script.Diagnostic{diag(0, 0, "WAIT should have 1 value (received 0)")}},
		{"WAIT WAIT(5)", []script.Diagnostic{
			diag(5, 11, "WAIT value should be a number (received `WAIT 5`)"),
			diag(0, 0, "WAIT should have 1 value (received 0)"),
		}},

		// ATDIRECTION
		{"ATDIRECTION(AUTO)", nil},
		{"ATDIRECTION(359)", nil},
		{"ATDIRECTION(360)", []script.Diagnostic{diag(12, 15, "ATDIRECTION value should be a between 0 and 359 (received `360`)")}},
		{"ATDIRECTION(north)", []script.Diagnostic{diag(12, 17, "ATDIRECTION value should be a number or AUTO (received `north`)")}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, checker.CheckLine(tt.line, 0))
		})
	}
}

func TestValidatorsIndependentOnOneLine(t *testing.T) {
	checker := newChecker(t)

	got := checker.CheckLine("MOVETO(a,b) ATSPEED(-1) WITHHDOP(0.3)", 0)
	assert.Equal(t, []script.Diagnostic{
		diag(0, 0, "MOVETO values should be numbers (received `a` and `b`)"),
		diag(20, 22, "ATSPEED value should be a positive number (received `-1`)"),
	}, got)
}
