package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain text untouched", []byte("hello world"), "hello world"},
		{"bom stripped", []byte("\xEF\xBB\xBFhello"), "hello"},
		{"smart quotes normalized", []byte("said “hi”"), `said "hi"`},
		{"apostrophe normalized", []byte("it’s"), "it's"},
		{"em dash normalized", []byte("a—b"), "a--b"},
		{"ellipsis normalized", []byte("wait…"), "wait..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clean(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanRepairsInvalidUTF8(t *testing.T) {
	got, err := Clean([]byte{'a', 0xFF, 'b'})
	require.NoError(t, err)
	assert.Equal(t, "a�b", got)
}
