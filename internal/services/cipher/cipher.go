// Package cipher implements the A1Z26 substitution used by the
// guardian riddle: each lowercase Latin letter maps to its 1-based
// alphabet position, rendered as dot-separated decimal tokens.
package cipher

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Errors
var (
	ErrInvalidInput = errors.New("cipher input must contain only Latin letters")
	ErrInvalidToken = errors.New("cipher token is not a valid letter position")
)

const separator = "."

// Encode maps each letter of the plaintext (case-folded) to its 1-based
// alphabet position and joins the tokens with dots. Non-letter input is
// rejected; only pure-letter strings are supported.
func Encode(plaintext string) (string, error) {
	folded := strings.ToLower(plaintext)

	tokens := make([]string, 0, len(folded))
	for _, r := range folded {
		if r < 'a' || r > 'z' {
			return "", ErrInvalidInput
		}
		tokens = append(tokens, strconv.Itoa(int(r-'a')+1))
	}
	return strings.Join(tokens, separator), nil
}

// Decode splits the token string on dots and maps each token back
// through the alphabet table. Decode(Encode(s)) == s for any string of
// lowercase Latin letters.
func Decode(tokenString string) (string, error) {
	if tokenString == "" {
		return "", nil
	}

	var sb strings.Builder
	for _, token := range strings.Split(tokenString, separator) {
		pos, err := strconv.Atoi(token)
		if err != nil || pos < 1 || pos > 26 {
			return "", ErrInvalidToken
		}
		sb.WriteRune(unicode.ToLower(rune('a' + pos - 1)))
	}
	return sb.String(), nil
}
