package script

// UTF16Column converts a byte offset within line into the UTF-16 code unit
// count LSP clients expect. Offsets past the end of the line keep their
// overhang so out-of-line spans stay the same width.
func UTF16Column(line string, offset int) int {
	if offset <= 0 {
		return offset
	}
	var units int
	for i, r := range line {
		if i >= offset {
			return units
		}
		// Each codepoint uses 1 or 2 UTF-16 code units
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return units + offset - len(line)
}

func toUTF16(line string, d Diagnostic) Diagnostic {
	d.Range.Start.Character = UTF16Column(line, d.Range.Start.Character)
	d.Range.End.Character = UTF16Column(line, d.Range.End.Character)
	return d
}
