// Package util contains small stateless helpers shared across layers.
package util

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

const (
	joinCodePrefix  = "FIT-"
	joinCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	joinCodeLength  = 4
)

// JoinCodePattern matches a well-formed family join code.
var JoinCodePattern = regexp.MustCompile(`^FIT-[A-Z0-9]{4}$`)

// GenerateJoinCode draws a random join code in the form FIT-XXXX, where XXXX
// is four uppercase alphanumeric characters. Uniqueness is not guaranteed
// here; callers rely on the database constraint and redraw on collision.
func GenerateJoinCode() string {
	var code strings.Builder
	code.Grow(len(joinCodePrefix) + joinCodeLength)
	code.WriteString(joinCodePrefix)

	max := big.NewInt(int64(len(joinCodeCharset)))
	for range joinCodeLength {
		// crypto/rand.Int never fails with a valid reader and positive max.
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		code.WriteByte(joinCodeCharset[n.Int64()])
	}

	return code.String()
}
