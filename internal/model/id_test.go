package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:  "bare number",
			input: "7",
			want:  7,
		},
		{
			name:  "hash prefix",
			input: "#7",
			want:  7,
		},
		{
			name:  "leading zeros",
			input: "#007",
			want:  7,
		},
		{
			name:  "surrounding whitespace",
			input: "  12 ",
			want:  12,
		},
		{
			name:  "large number",
			input: "1700000000000",
			want:  1700000000000,
		},
		// Error cases
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "zero",
			input:   "#0",
			wantErr: true,
		},
		{
			name:    "negative",
			input:   "-3",
			wantErr: true,
		},
		{
			name:    "letters",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "double hash",
			input:   "##3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "#1", FormatID(1))
	assert.Equal(t, "#42", FormatID(42))

	id, err := ParseID(FormatID(42))
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestMaxID(t *testing.T) {
	assert.Equal(t, 0, MaxID(nil))
	assert.Equal(t, 6, MaxID(SampleBusinesses()))
	assert.Equal(t, 9, MaxID([]Business{{ID: 3}, {ID: 9}, {ID: 4}}))
}
