package tensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshape(t *testing.T) {
	ten := FromSlice(Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
	ten.Reshape(Shape{3, 2})

	assert.True(t, ten.Shape().Equal(Shape{3, 2}))
	assert.Equal(t, 6, ten.Size())

	// The flat row-major order is untouched; only the coordinate
	// mapping changes.
	if diff := cmp.Diff([]int32{1, 2, 3, 4, 5, 6}, ten.Data()); diff != "" {
		t.Errorf("data mismatch after reshape (-want +got):\n%s", diff)
	}
	assert.Equal(t, int32(3), ten.At(1, 0))
	assert.Equal(t, int32(6), ten.At(2, 1))
}

func TestReshapeRoundTrip(t *testing.T) {
	ten := FromSlice(Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
	want := ten.Clone()

	ten.Reshape(Shape{6})
	ten.Reshape(Shape{2, 3})

	assert.True(t, ten.Equal(want))
}

func TestReshapeSizeChangePanics(t *testing.T) {
	ten := Zeros[int32](Shape{2, 3})
	assert.Panics(t, func() { ten.Reshape(Shape{2, 2}) })
	assert.Panics(t, func() { ten.Reshape(Shape{6, 0}) })
}

func TestChangeRank(t *testing.T) {
	ten := FromSlice(Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
	flat := ten.Data()

	raised := ten.ChangeRank(Shape{2, 3, 1})

	require.Equal(t, 3, raised.Rank())
	assert.True(t, raised.Shape().Equal(Shape{2, 3, 1}))
	assert.Equal(t, int32(6), raised.At(1, 2, 0))

	// The buffer moved rather than copied: the old flat view and the
	// new tensor share storage.
	flat[0] = 100
	assert.Equal(t, int32(100), raised.At(0, 0, 0))
}

func TestChangeRankReleasesReceiver(t *testing.T) {
	ten := Zeros[int32](Shape{2, 3})
	_ = ten.ChangeRank(Shape{6})

	assert.Panics(t, func() { ten.Data() })
}

func TestChangeRankSizeChangePanics(t *testing.T) {
	ten := Zeros[int32](Shape{2, 3})
	assert.Panics(t, func() { ten.ChangeRank(Shape{7}) })

	// A failed rank change must not consume the receiver.
	assert.Equal(t, int32(0), ten.At(0, 0))
}

func TestChangeRankToScalar(t *testing.T) {
	ten := Full(Shape{1, 1}, int32(5))
	scalar := ten.ChangeRank(Shape{})

	assert.Equal(t, 0, scalar.Rank())
	assert.Equal(t, int32(5), scalar.At())
}
