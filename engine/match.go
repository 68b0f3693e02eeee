package engine

import "bytes"

// MatchTerminal is the byte-compare step generated unparse_N procedures
// call for each terminal symbol in an alternative (spec.md §4.5 step 3): it
// succeeds iff input[*cursor : *cursor+len(term)] exists and equals term,
// advancing *cursor past the match on success.
func MatchTerminal(input []byte, cursor *int, term []byte) bool {
	end := *cursor + len(term)
	if end > len(input) {
		return false
	}
	if !bytes.Equal(input[*cursor:end], term) {
		return false
	}
	*cursor = end
	return true
}
