package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local form", "01712345678", "+8801712345678"},
		{"country code", "8801712345678", "+8801712345678"},
		{"international form", "+8801712345678", "+8801712345678"},
		{"with dashes", "01712-345-678", "+8801712345678"},
		{"with spaces", " 017 1234 5678 ", "+8801712345678"},
		{"with parentheses", "(01712)345678", "+8801712345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhoneInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "0171234567"},
		{"too long", "017123456789"},
		{"wrong prefix", "02712345678"},
		{"letters", "01712abc678"},
		{"foreign country code", "+919812345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizePhone(tt.input)
			assert.Error(t, err)
		})
	}
}
