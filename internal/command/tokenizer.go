package command

import (
	"strings"
	"unicode"
)

type tokenizerState int

const (
	stateOutside tokenizerState = iota
	stateBare
	stateSingleQuote
	stateDoubleQuote
)

// Tokenize splits line into tokens.
//
// A token is a maximal run of characters that are neither whitespace nor
// quotes, or the text between a matching pair of single or double quotes.
// Quote characters are not part of the token and a quote always starts a new
// token. A quote with no closing partner discards the rest of the line.
// There is no escape character.
func Tokenize(line string) []string {
	tokens := []string{}
	var current strings.Builder
	state := stateOutside

	flush := func() {
		tokens = append(tokens, current.String())
		current.Reset()
	}

	for _, ch := range line {
		switch state {
		case stateOutside, stateBare:
			switch {
			case ch == '\'' || ch == '"':
				if state == stateBare {
					flush()
				}
				if ch == '\'' {
					state = stateSingleQuote
				} else {
					state = stateDoubleQuote
				}
			case unicode.IsSpace(ch):
				if state == stateBare {
					flush()
				}
				state = stateOutside
			default:
				current.WriteRune(ch)
				state = stateBare
			}

		case stateSingleQuote:
			if ch == '\'' {
				flush()
				state = stateOutside
			} else {
				current.WriteRune(ch)
			}

		case stateDoubleQuote:
			if ch == '"' {
				flush()
				state = stateOutside
			} else {
				current.WriteRune(ch)
			}
		}
	}

	// An unterminated quote contributes nothing.
	if state == stateBare {
		flush()
	}

	return tokens
}
