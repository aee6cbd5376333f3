package script

import "strings"

// exclusivePairs lists commands that may not share an instruction line.
var exclusivePairs = [][2]string{
	{"MOVETO", "WAIT"},
}

// skipLine reports whether a line is blank or a comment.
func skipLine(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// CheckLineRules applies the rules about commands co-occurring on one line.
// Matching is on the raw text, so a command name inside an argument counts.
func CheckLineRules(line string, lineNo int) []Diagnostic {
	if skipLine(line) {
		return nil
	}

	var diagnostics []Diagnostic
	for _, pair := range exclusivePairs {
		if strings.Contains(line, pair[0]) && strings.Contains(line, pair[1]) {
			diagnostics = append(diagnostics, lineError(
				lineNo, 0, len(line),
				pair[0]+" and "+pair[1]+" cannot be in the same line",
			))
		}
	}
	return diagnostics
}
