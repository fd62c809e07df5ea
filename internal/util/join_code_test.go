package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJoinCode_Format(t *testing.T) {
	for range 100 {
		code := GenerateJoinCode()
		assert.Regexp(t, JoinCodePattern, code)
	}
}

func TestGenerateJoinCode_Charset(t *testing.T) {
	for range 100 {
		code := GenerateJoinCode()
		suffix := strings.TrimPrefix(code, "FIT-")
		for _, r := range suffix {
			assert.Contains(t, joinCodeCharset, string(r))
		}
	}
}

func TestGenerateJoinCode_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for range 200 {
		seen[GenerateJoinCode()] = struct{}{}
	}
	// 200 draws from a ~1.68M space should essentially never all collide.
	assert.Greater(t, len(seen), 1)
}
