package tensor

import (
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b Shape
		want bool
	}{
		{Shape{2, 3}, Shape{2, 3}, true},
		{Shape{2, 3}, Shape{3, 2}, false},
		{Shape{2, 3}, Shape{2, 3, 1}, false},
		{Shape{}, Shape{}, true},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Errorf("mutating the clone changed the original: %v", s)
	}
}

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		dims    Shape
		strides []int
		size    int
	}{
		{Shape{}, []int{}, 1},
		{Shape{6}, []int{1}, 6},
		{Shape{2, 3}, []int{3, 1}, 6},
		{Shape{2, 3, 4}, []int{12, 4, 1}, 24},
	}
	for _, tt := range tests {
		strides, size := computeLayout(tt.dims)
		if size != tt.size {
			t.Errorf("computeLayout(%v) size = %d, want %d", tt.dims, size, tt.size)
		}
		if len(strides) != len(tt.strides) {
			t.Errorf("computeLayout(%v) strides = %v, want %v", tt.dims, strides, tt.strides)
			continue
		}
		for i := range strides {
			if strides[i] != tt.strides[i] {
				t.Errorf("computeLayout(%v) strides = %v, want %v", tt.dims, strides, tt.strides)
				break
			}
		}
	}
}

func TestOffsetRowMajor(t *testing.T) {
	m := newMetaData(Shape{2, 3})

	// offset(r, c) must equal r*3 + c for a [2, 3] layout.
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			want := r*3 + c
			if got := m.offset([]int{r, c}); got != want {
				t.Errorf("offset(%d, %d) = %d, want %d", r, c, got, want)
			}
		}
	}
}

func TestOffsetScalar(t *testing.T) {
	m := newMetaData(Shape{})
	if got := m.offset(nil); got != 0 {
		t.Errorf("rank-0 offset() = %d, want 0", got)
	}
}

func TestOffsetArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("wrong index arity should panic")
		}
	}()
	m := newMetaData(Shape{2, 3})
	m.offset([]int{1})
}

func TestOffsetOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("out-of-bounds index should panic")
		}
	}()
	m := newMetaData(Shape{2, 3})
	m.offset([]int{1, 3})
}

func TestNewMetaDataInvalidDimPanics(t *testing.T) {
	for _, dims := range []Shape{{0}, {2, 0}, {-1, 3}, {-2, -3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("newMetaData(%v) should panic", dims)
				}
			}()
			newMetaData(dims)
		}()
	}
}

func TestNewMetaDataCheckedCountMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("element count mismatch should panic")
		}
	}()
	newMetaDataChecked(5, Shape{2, 3})
}

func TestReshapePreservesSize(t *testing.T) {
	m := newMetaData(Shape{2, 3})
	m.reshape(Shape{3, 2})

	if !m.dims.Equal(Shape{3, 2}) {
		t.Errorf("dims = %v, want [3 2]", m.dims)
	}
	if m.size != 6 {
		t.Errorf("size = %d, want 6", m.size)
	}
	if m.strides[0] != 2 || m.strides[1] != 1 {
		t.Errorf("strides = %v, want [2 1]", m.strides)
	}
}

func TestReshapeSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("reshape to a different element count should panic")
		}
	}()
	m := newMetaData(Shape{2, 3})
	m.reshape(Shape{2, 2})
}
