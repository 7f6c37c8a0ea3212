package textconv

import (
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	comaTerminatorToken = iota
)

var comaTerminatorMatcher = parsly.NewToken(comaTerminatorToken, "coma", matcher.NewTerminator(',', true))

// splitElements splits comma separated text into raw element tokens, spaces
// around each separator are dropped, embedded commas cannot be escaped.
func splitElements(text string) []string {
	if text == "" {
		return []string{""}
	}
	var tokens []string
	cursor := parsly.NewCursor("", []byte(text), 0)
	for cursor.Pos < len(cursor.Input) {
		match := cursor.MatchAny(comaTerminatorMatcher)
		switch match.Code {
		case comaTerminatorToken:
			value := match.Text(cursor)
			tokens = append(tokens, value[:len(value)-1]) //exclude ,
		default:
			value := string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
			tokens = append(tokens, value)
		}
	}
	for i, token := range tokens {
		if i > 0 {
			token = strings.TrimLeft(token, " ")
		}
		if i < len(tokens)-1 {
			token = strings.TrimRight(token, " ")
		}
		tokens[i] = token
	}
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
