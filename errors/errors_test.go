package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels_Wrap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: 99 (want 1 to 50)", ErrArityRange)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArityRange)
	assert.NotErrorIs(t, err, ErrDrift)
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113
		err2 := errors.New("error 2") //nolint:err113

		c.Add(err1)
		c.Add(nil)
		c.Add(err2)

		assert.True(t, c.HasError())
		assert.Len(t, c.errors, 2)
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Empty(t, c.errors)
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("returns single error as-is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113
		c.Add(err1)

		assert.Equal(t, err1, c.GetError())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := fmt.Errorf("%w: tuple_generated.go", ErrDrift)
		err2 := fmt.Errorf("%w: join_generated.go", ErrDrift)

		c.Add(err1)
		c.Add(err2)

		combined := c.GetError()
		require.Error(t, combined)
		require.ErrorIs(t, combined, err1)
		require.ErrorIs(t, combined, err2)
		assert.ErrorIs(t, combined, ErrDrift)
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(errors.New("error 1")) //nolint:err113
	assert.True(t, c.HasError())

	c.Clear()

	assert.False(t, c.HasError())
	require.NoError(t, c.GetError())

	c.Add(errors.New("error 2")) //nolint:err113
	assert.True(t, c.HasError())
}
