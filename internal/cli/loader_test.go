package cli

import (
	"errors"
	"testing"

	"github.com/enetx/g"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/dfa"
)

func TestLoadDefinitionFile(t *testing.T) {
	f, err := LoadDefinitionFile("testdata/div3.yaml")
	require.NoError(t, err)

	assert.Equal(t, "div3", f.Title())
	assert.Equal(t, map[string]int{"0": 0, "1": 1}, f.Alphabet)
	assert.Len(t, f.Transitions, 3)

	def, err := f.Compile()
	require.NoError(t, err)
	assert.Equal(t, 3, def.StateCount())

	for word, want := range map[string]bool{"": true, "11": true, "110": true, "1000": false} {
		accepted, err := def.Accepts(g.String(word))
		require.NoError(t, err)
		assert.Equal(t, want, accepted, "word %q", word)
	}
}

func TestLoadDefinitionFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code string
	}{
		{name: "missing file", path: "testdata/nope.yaml", code: ErrCodeNotFound},
		{name: "unknown field", path: "testdata/unknown_field.yaml", code: ErrCodeParse},
		{name: "multi symbol key", path: "testdata/long_key.yaml", code: ErrCodeSchema},
		{name: "missing transitions", path: "testdata/missing_transitions.yaml", code: ErrCodeSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDefinitionFile(tt.path)
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.code, loadErr.Code)
			assert.Equal(t, tt.path, loadErr.Path)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestDefinitionFile_CompileErrors(t *testing.T) {
	f, err := LoadDefinitionFile("testdata/bad_accepting.yaml")
	require.NoError(t, err)

	_, err = f.Compile()
	require.Error(t, err)
	assert.Equal(t, dfa.KindAcceptingStateOutOfRange, dfa.KindOf(err))
	assert.Equal(t, ErrCodeDefinition, errorCode(err))
	assert.Contains(t, err.Error(), "Accepting state 2 is outside valid range [0, 1]")
}

func TestParseDefinitionFile_EmptyTable(t *testing.T) {
	f, err := ParseDefinitionFile([]byte("alphabet: {a: 0}\ntransitions: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "unnamed", f.Title())

	_, err = f.Compile()
	assert.Equal(t, dfa.KindEmptyTransitionTable, dfa.KindOf(err))
}

func TestDefaultDefinitionFile(t *testing.T) {
	_, def, err := loadDefinition(&RootOptions{})
	require.NoError(t, err)

	accepted, err := def.Accepts("ab")
	require.NoError(t, err)
	assert.True(t, accepted)
}
