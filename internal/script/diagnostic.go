package script

// Severity mirrors the LSP diagnostic severity levels.
type Severity int

const (
	SeverityError Severity = 1
)

// Position is a zero-based line and UTF-16 character offset.
type Position struct {
	Line      int
	Character int
}

// Range spans Start to End on a single line.
type Range struct {
	Start Position
	End   Position
}

// Diagnostic is one problem found in a script.
type Diagnostic struct {
	Severity Severity
	Range    Range
	Message  string
}

func lineError(line, from, to int, message string) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Range: Range{
			Start: Position{Line: line, Character: from},
			End:   Position{Line: line, Character: to},
		},
		Message: message,
	}
}

// arityError is anchored at the start of the line, not at the invocation.
func arityError(line int, message string) Diagnostic {
	return lineError(line, 0, 0, message)
}
