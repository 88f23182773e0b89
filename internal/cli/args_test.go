package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \t ", nil},
		{"single word", "list", []string{"list"}},
		{"collapses spaces", "  filter   retail ", []string{"filter", "retail"}},
		{"double quotes", `add --name "Joe's Diner"`, []string{"add", "--name", "Joe's Diner"}},
		{"single quotes", `add --name 'The "Best" Shop'`, []string{"add", "--name", `The "Best" Shop`}},
		{"flag with equals and quotes", `add --location="1 Main St"`, []string{"add", "--location=1 Main St"}},
		{"escaped space", `find Sunrise\ Cafe`, []string{"find", "Sunrise Cafe"}},
		{"empty quoted arg", `add --phone ""`, []string{"add", "--phone", ""}},
		{"backslash literal in single quotes", `find 'a\b'`, []string{"find", `a\b`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitArgs(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitArgsErrors(t *testing.T) {
	_, err := SplitArgs(`add --name "unclosed`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated")

	_, err = SplitArgs(`find trailing\`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing backslash")
}
