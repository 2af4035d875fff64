package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		minor int64
		want  string
	}{
		{"zero", 0, "$0.00"},
		{"cents only", 99, "$0.99"},
		{"dollars and cents", 1234, "$12.34"},
		{"thousands grouped", 100000, "$1,000.00"},
		{"millions grouped", 123456789, "$1,234,567.89"},
		{"negative", -5000, "-$50.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.minor))
		})
	}
}
