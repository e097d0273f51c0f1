// Package movetext turns catalogue move text into flat ply lists.
// Catalogue entries carry lines like "1. e4 c5 2. Nf3 d6"; downstream
// code only ever wants the ply tokens.
package movetext

import "strings"

var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// Split returns the plies of a move-text line in order. Move-number
// tokens ("12.", "12..."), glued number prefixes ("1.e4") and game
// result tokens are stripped; whitespace runs are collapsed by
// tokenization.
func Split(text string) []string {
	var plies []string
	for _, tok := range strings.Fields(text) {
		tok = stripMoveNumber(tok)
		if tok == "" || results[tok] {
			continue
		}
		plies = append(plies, tok)
	}
	return plies
}

// stripMoveNumber removes a leading "<digits><dots>" prefix. A token
// that is only a move number reduces to the empty string.
func stripMoveNumber(tok string) string {
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i == 0 {
		return tok
	}
	j := i
	for j < len(tok) && tok[j] == '.' {
		j++
	}
	if j == i {
		// Digits with no dot: not a move number (could be a result
		// fragment or malformed token); leave it for the caller.
		return tok
	}
	return tok[j:]
}
