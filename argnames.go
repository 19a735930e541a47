// argnames.go — split the source text of an argument list into names.
//
// Input is the unevaluated text a call site passed for its values, e.g.
//
//	`fd, len(buf), "literal, with comma"`
//
// Only top-level commas split: commas nested in parentheses or inside a
// double-quoted literal belong to the current name. The returned names are
// substrings of the input and share its backing array; nothing here keeps
// them past the call that asked for them.
package xgxdiag

// SplitArgNames returns exactly n names parsed from macroArgs, plus the
// number of names the text actually contained. When found != n the extra
// names are dropped and missing slots are left empty.
//
// Whitespace before each name is skipped; whitespace before a comma is kept.
func SplitArgNames(macroArgs string, n int) (names []string, found int) {
	if n <= 0 {
		return nil, 0
	}
	names = make([]string, n)

	pos := skipSpace(macroArgs, 0)
	start := pos
	depth := 0
	quoted := false

	record := func(end int) {
		if found < n {
			names[found] = macroArgs[start:end]
		}
		found++
	}

	for pos < len(macroArgs) {
		c := macroArgs[pos]
		pos++
		if quoted {
			switch {
			case c == '\\' && pos < len(macroArgs):
				pos++
			case c == '"':
				quoted = false
			}
			continue
		}
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case '"':
			quoted = true
		case ',':
			if depth == 0 {
				record(pos - 1)
				pos = skipSpace(macroArgs, pos)
				start = pos
			}
		}
	}
	record(len(macroArgs))
	return names, found
}

// isSpace matches C isspace in the "C" locale.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// nameShown reports whether a parsed name is rendered as "name = value".
// Empty names and quoted literals are not.
func nameShown(name string) bool {
	return name != "" && name[0] != '"'
}
