// internal/noderange/parser.go
package noderange

import (
	"regexp"
	"strconv"
	"strings"
)

// intervalRegex matches the body of a bracketed descriptor, e.g. `-10000--4500`.
var intervalRegex = regexp.MustCompile(`^(?P<low>-?[0-9]+)-(?P<high>-?[0-9]+)$`)

// scalarRegex matches a bare integer descriptor.
var scalarRegex = regexp.MustCompile(`^-?[0-9]+$`)

// Parse converts a single descriptor into a Range.
//
// Dumps print the last axis of a parameter list right before the list's own
// closing bracket, so one surplus trailing `]` is tolerated.
func Parse(token string) (Range, error) {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return Range{}, &MalformedRangeError{Token: token, Reason: "empty descriptor"}
	}

	if tok[0] != '[' {
		tok = strings.TrimSuffix(tok, "]")
		if !scalarRegex.MatchString(tok) {
			return Range{}, &MalformedRangeError{Token: token, Reason: "not an integer"}
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return Range{}, &MalformedRangeError{Token: token, Reason: err.Error()}
		}
		return Point(v), nil
	}

	if !strings.HasSuffix(tok, "]") {
		return Range{}, &MalformedRangeError{Token: token, Reason: "missing closing bracket"}
	}
	body := strings.TrimSuffix(strings.TrimSuffix(tok[1:], "]"), "]")

	matches := intervalRegex.FindStringSubmatch(body)
	if matches == nil {
		return Range{}, &MalformedRangeError{Token: token, Reason: "expected [low-high]"}
	}

	low, err := strconv.Atoi(matches[intervalRegex.SubexpIndex("low")])
	if err != nil {
		return Range{}, &MalformedRangeError{Token: token, Reason: err.Error()}
	}
	high, err := strconv.Atoi(matches[intervalRegex.SubexpIndex("high")])
	if err != nil {
		return Range{}, &MalformedRangeError{Token: token, Reason: err.Error()}
	}

	r := Range{Low: low, High: high}
	if !r.Valid() {
		return Range{}, &MalformedRangeError{Token: token, Reason: "low bound exceeds high bound"}
	}
	return r, nil
}

// ParseList parses every descriptor in order, stopping at the first failure.
func ParseList(tokens []string) ([]Range, error) {
	out := make([]Range, 0, len(tokens))
	for _, tok := range tokens {
		r, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
