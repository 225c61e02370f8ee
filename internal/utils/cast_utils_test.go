// Package utils
package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStrToInt(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultValue int
		expected     int
	}{
		{"digit", "1", 0, 1},
		{"config version part", "12", 1, 12},
		{"negative", "-3", 0, -3},
		{"not a number", "v1", 0, 0},
		{"fallback", "beta", 100, 100},
		{"empty", "", 7, 7},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, StrToInt(test.input, test.defaultValue))
		})
	}
}
