package manager

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// positionToOffset computes the byte offset of an LSP Position, whose
// character is counted in UTF-16 code units.
func positionToOffset(document string, pos protocol.Position) int {
	lines := strings.Split(document, "\n")
	// Clamp line number
	if int(pos.Line) >= len(lines) {
		return len(document)
	}
	offset := 0
	// Sum bytes for all lines before the target line (including newline)
	for i := protocol.UInteger(0); i < pos.Line; i++ {
		offset += len(lines[i]) + 1
	}
	var units protocol.UInteger
	for i, r := range lines[pos.Line] {
		unitCount := protocol.UInteger(1)
		if r > 0xFFFF {
			unitCount = 2
		}
		if units+unitCount > pos.Character {
			return offset + i
		}
		units += unitCount
	}
	return offset + len(lines[pos.Line])
}

// ApplyTextEdit splices text into document over the given range.
func ApplyTextEdit(r protocol.Range, text string, document string) string {
	start := positionToOffset(document, r.Start)
	end := positionToOffset(document, r.End)
	if end < start {
		end = start
	}
	return document[:start] + text + document[end:]
}
