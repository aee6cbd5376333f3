package script

import (
	"fmt"
	"strings"

	"cyclels/internal/registry"
)

// validator checks the arguments of one invocation found on line.
type validator func(inv Invocation, line int) []Diagnostic

// argumentRule pairs a validator with the number of values it expects.
type argumentRule struct {
	arity    int
	validate validator
}

var validators = map[string]argumentRule{
	"MOVETO":         {2, validateMoveTo},
	"ATSPEED":        {1, singleValue("ATSPEED", checkAtSpeed)},
	"WITHHDOP":       {1, singleValue("WITHHDOP", checkWithHdop)},
	"WITHSATELLITES": {1, singleValue("WITHSATELLITES", checkCount("WITHSATELLITES"))},
	"WITHALTITUDE":   {1, singleValue("WITHALTITUDE", checkCount("WITHALTITUDE"))},
	"WITHPARAM":      {2, validateWithParam},
	"WAIT":           {1, singleValue("WAIT", checkWait)},
	"ATDIRECTION":    {1, singleValue("ATDIRECTION", checkAtDirection)},
}

// arguments strips the command prefix and the closing paren.
func arguments(inv Invocation) string {
	raw := strings.Replace(inv.Text, inv.Name+"(", "", 1)
	return strings.Replace(raw, ")", "", 1)
}

func validateMoveTo(inv Invocation, line int) []Diagnostic {
	raw := arguments(inv)
	if raw == "" {
		return []Diagnostic{arityError(line, "MOVETO should have 2 values (received 0)")}
	}

	values := strings.Split(raw, ",")
	if len(values) != 2 {
		return []Diagnostic{arityError(line, fmt.Sprintf("MOVETO should have 2 values (received %d)", len(values)))}
	}

	if !isNumber(values[0]) || !isNumber(values[1]) {
		return []Diagnostic{arityError(line, fmt.Sprintf(
			"MOVETO values should be numbers (received `%s` and `%s`)", values[0], values[1],
		))}
	}
	return nil
}

func validateWithParam(inv Invocation, line int) []Diagnostic {
	raw := arguments(inv)
	if raw == "" {
		return []Diagnostic{arityError(line, "WITHPARAM should have 2 values (received 0)")}
	}

	values := strings.Split(raw, ",")
	if len(values) != 2 {
		return []Diagnostic{arityError(line, fmt.Sprintf("WITHPARAM should have 2 values (received %d)", len(values)))}
	}

	var diagnostics []Diagnostic
	name, value := values[0], values[1]
	begin := inv.Start + len("WITHPARAM(")

	switch {
	case name == "":
		diagnostics = append(diagnostics, lineError(line, begin, begin, "WITHPARAM parameter name should not be empty"))
	case !strings.HasPrefix(name, `"`) || !strings.HasSuffix(name, `"`):
		diagnostics = append(diagnostics, lineError(line, begin, begin+len(name), `WITHPARAM parameter name should start and end with "`))
	}

	if value == "" {
		begin += len(name) + 1
		// The message names the parameter although it is the value that is empty.
		diagnostics = append(diagnostics, lineError(line, begin, begin, "WITHPARAM parameter name should not be empty"))
	}
	return diagnostics
}

// singleValue builds a validator for one-argument commands. check returns
// an empty string when the trimmed value is acceptable.
func singleValue(name string, check func(value string) string) validator {
	return func(inv Invocation, line int) []Diagnostic {
		raw := arguments(inv)
		if raw == "" {
			return []Diagnostic{arityError(line, name+" should have 1 value (received 0)")}
		}

		value := strings.TrimSpace(raw)
		message := check(value)
		if message == "" {
			return nil
		}
		begin := inv.Start + len(name) + 1
		return []Diagnostic{lineError(line, begin, begin+len(value), message)}
	}
}

func checkAtSpeed(value string) string {
	if value == registry.Auto {
		return ""
	}
	n, ok := parseNumber(value)
	if !ok {
		return fmt.Sprintf("ATSPEED value should be a number or AUTO (received `%s`)", value)
	}
	if n < 0 {
		return fmt.Sprintf("ATSPEED value should be a positive number (received `%s`)", value)
	}
	return ""
}

// checkWithHdop keeps the "or AUTO" wording even though AUTO is rejected here.
func checkWithHdop(value string) string {
	n, ok := parseNumber(value)
	if !ok {
		return fmt.Sprintf("WITHHDOP value should be a number or AUTO (received `%s`)", value)
	}
	if n < 0 || n > 1 {
		return fmt.Sprintf("WITHHDOP value should be a between 0 and 1 (received `%s`)", value)
	}
	return ""
}

func checkCount(name string) func(string) string {
	return func(value string) string {
		if !isDigits(value) {
			return fmt.Sprintf("%s value should be a number (received `%s`)", name, value)
		}
		// Unreachable for a digits-only value.
		if n, _ := parseNumber(value); n < 0 {
			return fmt.Sprintf("%s value should be greater than 0 (received `%s`)", name, value)
		}
		return ""
	}
}

// checkWait enforces WAIT >= 1; the message wording predates the bound.
func checkWait(value string) string {
	if !isDigits(value) {
		return fmt.Sprintf("WAIT value should be a number (received `%s`)", value)
	}
	if n, _ := parseNumber(value); n < 1 {
		return fmt.Sprintf("WAIT value should be greater than 1 (received `%s`)", value)
	}
	return ""
}

func checkAtDirection(value string) string {
	if value == registry.Auto {
		return ""
	}
	n, ok := parseNumber(value)
	if !ok {
		return fmt.Sprintf("ATDIRECTION value should be a number or AUTO (received `%s`)", value)
	}
	if n < 0 || n > 359 {
		return fmt.Sprintf("ATDIRECTION value should be a between 0 and 359 (received `%s`)", value)
	}
	return ""
}
