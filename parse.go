package formfill

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseResponse extracts a JSON value from raw model output. Models wrap
// their payload in markdown fences, prepend prose, or append commentary, so
// the parse is an ordered fallback:
//
//  1. If the text contains a fenced block (``` with an optional json tag),
//     its inner content becomes the candidate; otherwise the full text does.
//  2. Strict JSON parse of the candidate.
//  3. On failure, strict parse of the substring between the first '{' and
//     the last '}' of the candidate.
//  4. On failure, repair the candidate (then the substring) with jsonrepair
//     and parse again, accepting only object or array results.
//
// When every attempt fails the returned error is a *ParseError carrying the
// original raw text for diagnostics.
func ParseResponse(raw string) (any, error) {
	candidate := raw
	if inner, ok := fencedBlock(raw); ok {
		candidate = inner
	}
	candidate = strings.TrimSpace(candidate)

	v, firstErr := decodeStrict(candidate)
	if firstErr == nil {
		return v, nil
	}
	span, hasSpan := braceSpan(candidate)
	if hasSpan {
		if v, err := decodeStrict(span); err == nil {
			return v, nil
		}
	}
	if v, ok := decodeRepaired(candidate); ok {
		return v, nil
	}
	if hasSpan {
		if v, ok := decodeRepaired(span); ok {
			return v, nil
		}
	}
	return nil, &ParseError{RawText: raw, Err: firstErr}
}

// fencedBlock returns the inner content of the first markdown code fence.
// An unterminated fence yields everything after the opener.
func fencedBlock(s string) (string, bool) {
	start := strings.Index(s, "```")
	if start < 0 {
		return "", false
	}
	rest := s[start+3:]
	rest = strings.TrimPrefix(rest, "json")
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}

// braceSpan returns the substring between the first '{' and the last '}'.
func braceSpan(s string) (string, bool) {
	open := strings.IndexByte(s, '{')
	last := strings.LastIndexByte(s, '}')
	if open < 0 || last < open {
		return "", false
	}
	return s[open : last+1], true
}

func decodeStrict(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeRepaired rescues near-JSON candidates (single quotes, trailing
// commas, unquoted keys). Only object or array results are accepted:
// jsonrepair would happily quote plain prose into a bare string, which is
// never what a form extraction means.
func decodeRepaired(s string) (any, bool) {
	if !strings.ContainsAny(s, "{[") {
		return nil, false
	}
	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return nil, false
	}
	v, err := decodeStrict(repaired)
	if err != nil {
		return nil, false
	}
	switch v.(type) {
	case map[string]any, []any:
		return v, true
	}
	return nil, false
}
