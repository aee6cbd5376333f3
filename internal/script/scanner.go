package script

import "strings"

// Invocation is one command occurrence found on a line.
type Invocation struct {
	Name string
	// Text runs from the command name to its closing paren inclusive, with
	// text claimed by earlier invocations left out. Empty when no closing
	// paren follows the name.
	Text string
	// Start is the byte column of the name in the original line, -1 for an
	// occurrence swallowed by an earlier invocation of the same command.
	Start int
	// End is the offset of the closing paren within Text, -1 if absent.
	End int
}

// ScanLine finds the invocations of every name on line. Names are handled in
// the given order and each occurrence left to right; text claimed by one
// invocation is never matched again, neither by the same command nor by a
// later one. Occurrences are counted when a name is reached: one that an
// earlier invocation of the same name swallows still yields an invocation,
// with no text.
func ScanLine(line string, names []string) []Invocation {
	consumed := make([]bool, len(line))
	var found []Invocation

	for _, name := range names {
		if name == "" {
			continue
		}
		from := 0
		for n := countFree(line, name, consumed); n > 0; n-- {
			start := indexFree(line, name, from, consumed)
			if start < 0 {
				found = append(found, Invocation{Name: name, Start: -1, End: -1})
				continue
			}
			from = start + len(name)

			inv := Invocation{Name: name, Start: start, End: -1}
			closing := indexFreeByte(line, ')', from, consumed)
			if closing < 0 {
				claim(consumed, start, from)
				found = append(found, inv)
				continue
			}

			var text strings.Builder
			for i := start; i <= closing; i++ {
				if !consumed[i] {
					text.WriteByte(line[i])
				}
			}
			inv.Text = text.String()
			inv.End = len(inv.Text) - 1
			claim(consumed, start, closing+1)
			found = append(found, inv)
		}
	}
	return found
}

// indexFree returns the first occurrence of sub at or after from that does
// not overlap consumed text.
func indexFree(s, sub string, from int, consumed []bool) int {
	for from <= len(s)-len(sub) {
		i := strings.Index(s[from:], sub)
		if i < 0 {
			return -1
		}
		i += from
		if !anyClaimed(consumed, i, i+len(sub)) {
			return i
		}
		from = i + 1
	}
	return -1
}

// countFree counts the non-overlapping occurrences of sub outside consumed
// text.
func countFree(s, sub string, consumed []bool) int {
	n := 0
	for from := 0; ; n++ {
		i := indexFree(s, sub, from, consumed)
		if i < 0 {
			return n
		}
		from = i + len(sub)
	}
}

func indexFreeByte(s string, c byte, from int, consumed []bool) int {
	for i := from; i < len(s); i++ {
		if s[i] == c && !consumed[i] {
			return i
		}
	}
	return -1
}

func anyClaimed(consumed []bool, from, to int) bool {
	for i := from; i < to; i++ {
		if consumed[i] {
			return true
		}
	}
	return false
}

func claim(consumed []bool, from, to int) {
	for i := from; i < to; i++ {
		consumed[i] = true
	}
}
