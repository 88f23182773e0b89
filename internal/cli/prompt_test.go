package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterReadLine(t *testing.T) {
	p := NewPrompter(strings.NewReader("first\r\nsecond\nlast"), io.Discard)

	for _, want := range []string{"first", "second", "last"} {
		got, err := p.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := p.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestPrompterAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("Sunrise Cafe\n"), &out)

	got, err := p.Ask("Business Name")
	require.NoError(t, err)
	assert.Equal(t, "Sunrise Cafe", got)
	assert.Equal(t, "Business Name: ", out.String())
}

func TestPrompterConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
		{"", false}, // end of input
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Delete it?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasPrefix(out.String(), "Delete it? [y/N] "))
		})
	}
}
