// SPDX-License-Identifier: MIT

// Package spinop - label codec.
//
// Grammar (string boundary):
//
//	term   := "" | factor (" " factor)*
//	factor := GENERATOR "_" SITE ["^" EXPONENT]
//	GENERATOR ∈ {X, Y, Z}
//	SITE     — non-negative decimal integer
//	EXPONENT — positive decimal integer
//
// The empty string parses to the identity term. Strict parsing (ParseTerm)
// rejects a zero exponent; the lenient construction path accepts "^0" so
// that Simplify can collapse the factor to a no-op, matching the
// canonicalizer contract.

package spinop

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTerm parses a term label under the strict grammar: every exponent
// must be a positive decimal integer.
//
// Returns:
//   - Term: ordered factor sequence; empty Term for the empty label.
//
// Errors:
//   - ErrMalformedLabel (wrapped with the offending token) on any grammar
//     violation.
//
// Complexity:
//   - Time O(len(label)), Space O(#factors).
func ParseTerm(label string) (Term, error) {
	return parseTerm(label, false)
}

// parseTerm is the shared codec entry. allowZeroExp admits "^0" tokens,
// which only the construction path uses (Simplify later drops them).
func parseTerm(label string, allowZeroExp bool) (Term, error) {
	tokens := strings.Fields(label)
	if len(tokens) == 0 {
		return Term{}, nil // identity term
	}
	t := make(Term, 0, len(tokens))
	for _, tok := range tokens {
		f, err := parseFactor(tok, allowZeroExp)
		if err != nil {
			return nil, err
		}
		t = append(t, f)
	}

	return t, nil
}

// parseFactor decodes a single "G_i" or "G_i^k" token.
func parseFactor(tok string, allowZeroExp bool) (Factor, error) {
	malformed := func() (Factor, error) {
		return Factor{}, fmt.Errorf("token %q: %w", tok, ErrMalformedLabel)
	}

	// Shortest legal token is "G_i": three bytes.
	if len(tok) < 3 || tok[1] != '_' {
		return malformed()
	}
	gen, ok := parseGenerator(tok[0])
	if !ok {
		return malformed()
	}

	sitePart := tok[2:]
	expPart := ""
	if caret := strings.IndexByte(sitePart, '^'); caret >= 0 {
		expPart = sitePart[caret+1:]
		sitePart = sitePart[:caret]
	}

	site, ok := parseDecimal(sitePart)
	if !ok {
		return malformed()
	}

	exp := 1
	if expPart != "" || strings.IndexByte(tok, '^') >= 0 {
		exp, ok = parseDecimal(expPart)
		if !ok {
			return malformed()
		}
		if exp == 0 && !allowZeroExp {
			return malformed()
		}
	}

	return Factor{Gen: gen, Site: site, Exp: exp}, nil
}

// parseDecimal accepts non-empty, digits-only decimal input. Signs,
// whitespace and non-ASCII digits are all rejected, so negative sites and
// exponents can never reach the numeric layer.
func parseDecimal(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false // overflow of a digits-only token
	}

	return n, true
}
