package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type big struct {
	data [2048]byte
}

func TestLayoutOf(t *testing.T) {
	assert.Equal(t, Layout{Size: 1, Align: 1}, LayoutOf[byte]())
	assert.Equal(t, Layout{Size: 8, Align: 8}, LayoutOf[int64]())
	assert.Equal(t, Layout{Size: 0, Align: 1}, LayoutOf[struct{}]())
	assert.Equal(t, 2048, LayoutOf[big]().Size)
}

func TestArrayLayout(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		l, err := ArrayLayout[int64](10)
		require.NoError(t, err)
		assert.Equal(t, Layout{Size: 80, Align: 8}, l)
	})

	t.Run("zero count", func(t *testing.T) {
		l, err := ArrayLayout[int64](0)
		require.NoError(t, err)
		assert.True(t, l.IsZero())
	})

	t.Run("zero sized element", func(t *testing.T) {
		l, err := ArrayLayout[struct{}](math.MaxInt)
		require.NoError(t, err)
		assert.True(t, l.IsZero())
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := ArrayLayout[int64](math.MaxInt/8 + 1)
		assert.ErrorIs(t, err, ErrCapacityOverflow)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := ArrayLayout[int64](-1)
		assert.ErrorIs(t, err, ErrCapacityOverflow)
	})
}

func TestLayout_Validate(t *testing.T) {
	assert.NoError(t, Layout{Size: 16, Align: 8}.Validate())
	assert.NoError(t, Layout{Size: 0, Align: 1}.Validate())
	assert.Error(t, Layout{Size: -1, Align: 8}.Validate())
	assert.Error(t, Layout{Size: 16, Align: 3}.Validate())
	assert.Error(t, Layout{Size: 16, Align: 0}.Validate())
}

func TestLayout_String(t *testing.T) {
	assert.Equal(t, "Layout{size: 32, align: 8}", Layout{Size: 32, Align: 8}.String())
}
