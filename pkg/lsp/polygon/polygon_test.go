package polygon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewRectangle(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		want    float64
		wantErr error
	}{
		{name: "three by four", w: 3, h: 4, want: 12},
		{name: "degenerate", w: 0, h: 9, want: 0},
		{name: "negative width", w: -1, h: 2, wantErr: ErrNegativeDimension},
		{name: "negative height", w: 1, h: -2, wantErr: ErrNegativeDimension},
		{name: "NaN width", w: math.NaN(), h: 2, wantErr: ErrNonFiniteDimension},
		{name: "infinite height", w: 2, h: math.Inf(1), wantErr: ErrNonFiniteDimension},
		{name: "negative infinite width", w: math.Inf(-1), h: 2, wantErr: ErrNonFiniteDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRectangle(tt.w, tt.h)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Area())
		})
	}
}

func TestNewSquare(t *testing.T) {
	tests := []struct {
		name    string
		side    float64
		want    float64
		wantErr error
	}{
		{name: "side two", side: 2, want: 4},
		{name: "negative", side: -0.5, wantErr: ErrNegativeDimension},
		{name: "NaN", side: math.NaN(), wantErr: ErrNonFiniteDimension},
		{name: "infinite", side: math.Inf(1), wantErr: ErrNonFiniteDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSquare(tt.side)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Area())
		})
	}
}

func TestZeroValues(t *testing.T) {
	assert.Zero(t, Rectangle{}.Area())
	assert.Zero(t, Square{}.Area())
}

func TestTotalArea(t *testing.T) {
	r, err := NewRectangle(3, 4)
	require.NoError(t, err)
	s, err := NewSquare(2)
	require.NoError(t, err)

	assert.Equal(t, 16.0, TotalArea(r, s))
	assert.Zero(t, TotalArea())
}

func TestRectangleArea_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.Float64Range(0, 1e6).Draw(t, "width")
		h := rapid.Float64Range(0, 1e6).Draw(t, "height")

		r, err := NewRectangle(w, h)
		if err != nil {
			t.Fatalf("NewRectangle(%v, %v): %v", w, h, err)
		}
		if got := r.Area(); got != w*h {
			t.Fatalf("area = %v, want %v", got, w*h)
		}
	})
}

func TestSquareArea_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		side := rapid.Float64Range(0, 1e6).Draw(t, "side")

		s, err := NewSquare(side)
		if err != nil {
			t.Fatalf("NewSquare(%v): %v", side, err)
		}
		want := side * side
		if got := s.Area(); math.Abs(got-want) > 1e-12*math.Max(1, want) {
			t.Fatalf("area = %v, want %v", got, want)
		}
	})
}
