package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	cases := []struct {
		name    string
		x, y    int
		want    string
		wantErr bool
	}{
		{"origin", 0, 0, "(0, 0)", false},
		{"positive", 2, 3, "(2, 3)", false},
		{"negative x", -1, 3, "", true},
		{"negative y", 2, -1, "", true},
		{"both negative", -4, -9, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPoint(tc.x, tc.y)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				assert.Contains(t, err.Error(), fmt.Sprintf("(%d, %d)", tc.x, tc.y))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
			assert.Equal(t, tc.x, p.X())
			assert.Equal(t, tc.y, p.Y())
		})
	}
}

func TestPointEquality(t *testing.T) {
	a := MustPoint(4, 7)
	assert.True(t, a.Equal(MustPoint(4, 7)))
	assert.True(t, a == MustPoint(4, 7))
	assert.False(t, a.Equal(MustPoint(7, 4)))
	assert.False(t, a.Equal(MustPoint(4, 8)))
	assert.True(t, Point{}.Equal(MustPoint(0, 0)))
}

func TestPointMoves(t *testing.T) {
	p := MustPoint(3, 5)

	left, err := p.MoveLeft()
	require.NoError(t, err)
	assert.Equal(t, "(2, 5)", left.String())

	right, err := p.MoveRight()
	require.NoError(t, err)
	assert.Equal(t, "(4, 5)", right.String())

	up, err := p.MoveUp()
	require.NoError(t, err)
	assert.Equal(t, "(3, 4)", up.String())

	down, err := p.MoveDown()
	require.NoError(t, err)
	assert.Equal(t, "(3, 6)", down.String())

	assert.Equal(t, "(3, 5)", p.String(), "moves must not change the receiver")
}

func TestPointMovesOffTheGrid(t *testing.T) {
	_, err := MustPoint(0, 4).MoveLeft()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = MustPoint(4, 0).MoveUp()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = MustPoint(0, 0).MoveRight()
	assert.NoError(t, err)
	_, err = MustPoint(0, 0).MoveDown()
	assert.NoError(t, err)
}

func TestPointMoveRoundTrip(t *testing.T) {
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			p := MustPoint(x, y)

			r, err := p.MoveRight()
			require.NoError(t, err)
			back, err := r.MoveLeft()
			require.NoError(t, err)
			assert.True(t, back.Equal(p), "right/left from %s", p)

			d, err := p.MoveDown()
			require.NoError(t, err)
			back, err = d.MoveUp()
			require.NoError(t, err)
			assert.True(t, back.Equal(p), "down/up from %s", p)

			if x > 0 {
				l, err := p.MoveLeft()
				require.NoError(t, err)
				back, err = l.MoveRight()
				require.NoError(t, err)
				assert.True(t, back.Equal(p), "left/right from %s", p)
			}
			if y > 0 {
				u, err := p.MoveUp()
				require.NoError(t, err)
				back, err = u.MoveDown()
				require.NoError(t, err)
				assert.True(t, back.Equal(p), "up/down from %s", p)
			}
		}
	}
}

func TestMustPointPanics(t *testing.T) {
	assert.Panics(t, func() { MustPoint(-1, 0) })
}
