package checksum

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	tests := map[string]struct {
		content  string
		expected string
	}{
		"empty input": {
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		"short ascii": {
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		"csv header line": {
			content:  "id,name,score\n",
			expected: SumBytes([]byte("id,name,score\n")),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			digest, err := Sum(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, digest)
			assert.Len(t, digest, 64)
		})
	}
}

func TestSumFile(t *testing.T) {
	t.Run("matches in-memory digest", func(t *testing.T) {
		content := []byte("id,name\n1,alpha\n2,beta\n")
		path := filepath.Join(t.TempDir(), "data.csv")
		require.NoError(t, os.WriteFile(path, content, 0644))

		digest, err := SumFile(path)
		require.NoError(t, err)
		assert.Equal(t, SumBytes(content), digest)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.csv")
		require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0644))

		first, err := SumFile(path)
		require.NoError(t, err)
		second, err := SumFile(path)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("streams content larger than the copy buffer", func(t *testing.T) {
		content := bytes.Repeat([]byte("row,of,data\n"), 4096)
		require.Greater(t, len(content), copyBufferSize)

		path := filepath.Join(t.TempDir(), "large.csv")
		require.NoError(t, os.WriteFile(path, content, 0644))

		digest, err := SumFile(path)
		require.NoError(t, err)
		assert.Equal(t, SumBytes(content), digest)
	})

	t.Run("missing file returns error naming the path", func(t *testing.T) {
		_, err := SumFile(filepath.Join(t.TempDir(), "absent.csv"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "absent.csv")
	})
}

func TestSumBytes(t *testing.T) {
	// Identical content must always produce the identical digest, and any
	// byte difference must change it.
	base := SumBytes([]byte("1,2,3\n"))
	assert.Equal(t, base, SumBytes([]byte("1,2,3\n")))
	assert.NotEqual(t, base, SumBytes([]byte("1,2,4\n")))
	assert.Len(t, base, 64)
}
