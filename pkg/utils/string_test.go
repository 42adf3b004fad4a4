package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Property ZIP Code", "property_zip_code"},
		{"Inspection Date", "inspection_date"},
		{"complaint_id", "complaint_id"},
		{"  ID  ", "id"},
		{"Type (raw)", "type_raw"},
		{"A--B", "a_b"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SnakeCase(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "desk approval", NormalizeWhitespace("  desk   approval "))
	assert.Equal(t, "", NormalizeWhitespace("   "))
}

func TestDigitRuns(t *testing.T) {
	assert.Equal(t, []string{"60647"}, DigitRuns("60647 (rear)"))
	assert.Equal(t, []string{"60647", "1234"}, DigitRuns("60647-1234"))
	assert.Nil(t, DigitRuns("no digits"))
	assert.Equal(t, []string{"606471234"}, DigitRuns("606471234"))
}
