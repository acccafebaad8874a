package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input       string
		stripSpaces bool
		expected    string
		wantErr     bool
	}{
		{"35.00", false, "35", false},
		{"¥35.00", false, "35", false},
		{"￥1,234.56", false, "1234.56", false},
		{" 25.99 ", false, "25.99", false},
		{"-5.00", false, "-5", false},
		{"28. 50", true, "28.5", false},
		{"1 234.56", true, "1234.56", false},
		{"28. 50", false, "", true},
		{"", false, "", true},
		{"abc", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input, tt.stripSpaces)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}
