package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeParams_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TypeParams(3), TypeParams(3))
	assert.Equal(t, []string{"T1", "T2", "T3"}, TypeParams(3))
	assert.Empty(t, TypeParams(0))
}

func TestTypeParams_Distinct(t *testing.T) {
	t.Parallel()

	params := TypeParams(MaxSupportedArity)
	seen := make(map[string]bool, len(params))

	for _, param := range params {
		assert.False(t, seen[param], param)
		seen[param] = true
	}
}

func TestField_CoversSupportedRange(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, MaxSupportedArity)

	for i := 0; i < MaxSupportedArity; i++ {
		name := Field(i)

		require.NotEmpty(t, name)
		assert.False(t, seen[name], name)
		seen[name] = true
	}

	assert.Equal(t, "first", Field(0))
	assert.Equal(t, "twentyFirst", Field(20))
	assert.Equal(t, "fiftieth", Field(49))
}

func TestAccessor_ExportsField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "First", Accessor(0))
	assert.Equal(t, "TwentySecond", Accessor(21))
	assert.Equal(t, "Fiftieth", Accessor(49))
}
