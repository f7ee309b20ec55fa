// Package jsonwalk checks every token in a JSON document against a vocabulary.
//
// The walk is depth-first in document order: object keys are checked before
// their values, elements left to right. The reported token is always the
// first violation under that order, which is part of the contract callers
// rely on when surfacing errors. Traversal therefore operates on the raw
// document bytes rather than on decoded Go maps, whose iteration order is
// unspecified.
package jsonwalk

import (
	"github.com/buger/jsonparser"

	"github.com/pixel-tools/cfgcheck/internal/vocab"
)

// Mode selects which tokens are checked against the vocabulary.
type Mode int

const (
	// FieldNames checks object keys only.
	FieldNames Mode = iota

	// Lexicon checks object keys and string scalar values.
	Lexicon
)

// errStop aborts an ObjectEach iteration once a violation is recorded.
type errStop struct{}

func (errStop) Error() string { return "stop" }

// Check walks doc and returns the first token not present in the
// vocabulary. ok is true when every checked token is known; the document
// is assumed to be well-formed JSON (callers validate it when parsing).
func Check(doc []byte, vocabulary vocab.Set, mode Mode) (token string, ok bool) {
	value, dataType, _, err := jsonparser.Get(doc)
	if err != nil {
		return "", true
	}
	return walkValue(value, dataType, vocabulary, mode)
}

func walkValue(value []byte, dataType jsonparser.ValueType, vocabulary vocab.Set, mode Mode) (string, bool) {
	switch dataType {
	case jsonparser.Object:
		return walkObject(value, vocabulary, mode)
	case jsonparser.Array:
		return walkArray(value, vocabulary, mode)
	case jsonparser.String:
		if mode == Lexicon {
			s := parseString(value)
			if !vocabulary.Contains(s) {
				return s, false
			}
		}
		return "", true
	default:
		// Numbers, booleans and null carry no vocabulary tokens.
		return "", true
	}
}

func walkObject(data []byte, vocabulary vocab.Set, mode Mode) (string, bool) {
	var bad string
	found := false

	_ = jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		k := parseString(key)
		if !vocabulary.Contains(k) {
			bad, found = k, true
			return errStop{}
		}
		if token, ok := walkValue(value, dataType, vocabulary, mode); !ok {
			bad, found = token, true
			return errStop{}
		}
		return nil
	})

	if found {
		return bad, false
	}
	return "", true
}

func walkArray(data []byte, vocabulary vocab.Set, mode Mode) (string, bool) {
	var bad string
	found := false

	// ArrayEach offers no early exit, so later violations are ignored once
	// the first one is recorded.
	_, _ = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if found {
			return
		}
		if token, ok := walkValue(value, dataType, vocabulary, mode); !ok {
			bad, found = token, true
		}
	})

	if found {
		return bad, false
	}
	return "", true
}

// parseString unescapes raw string bytes as handed out by jsonparser.
func parseString(b []byte) string {
	s, err := jsonparser.ParseString(b)
	if err != nil {
		return string(b)
	}
	return s
}
