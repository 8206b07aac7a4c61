// Package identifier generates the short human-readable codes printed on
// member cards and checkout slips.
package identifier

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// CodeLength is the fixed length of member and transaction codes.
	CodeLength = 6

	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Generator produces a fresh code on every call.
type Generator func() (string, error)

// NewCode returns a random 6-character upper-case alphanumeric code.
// Codes are independent between calls; uniqueness is left to the database.
func NewCode() (string, error) {
	id, err := gonanoid.Generate(alphabet, CodeLength)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return strings.ToUpper(id), nil
}
