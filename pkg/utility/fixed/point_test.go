package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_Comparisons(t *testing.T) {
	a := FromFloat64(1.5)
	b := FromFloat64(2.5)

	assert.True(t, b.Gt(a))
	assert.True(t, a.Lt(b))
	assert.True(t, a.Eq(FromInt64(15, 1)))
	assert.True(t, a.Gte(a))
	assert.True(t, a.Lte(b))
	assert.False(t, a.Gt(b))
}

func TestPoint_Arithmetic(t *testing.T) {
	a := FromFloat64(10.0)
	b := FromFloat64(4.0)

	assert.True(t, a.Add(b).Eq(FromFloat64(14.0)))
	assert.True(t, a.Sub(b).Eq(FromFloat64(6.0)))
	assert.True(t, a.Mul(b).Eq(FromFloat64(40.0)))
	assert.True(t, a.Div(b).Eq(FromFloat64(2.5)))
	assert.True(t, a.DivInt(4).Eq(FromFloat64(2.5)))
	assert.True(t, b.Neg().Eq(FromFloat64(-4.0)))
	assert.True(t, b.Neg().Abs().Eq(b))
}

func TestPoint_FromString(t *testing.T) {
	p, err := FromString("1.2345")
	require.NoError(t, err)
	assert.Equal(t, "1.2345", p.String())

	_, err = FromString("not a number")
	assert.Error(t, err)
}

func TestPoint_TextRoundTrip(t *testing.T) {
	p := FromFloat64(1.2345)

	text, err := p.MarshalText()
	require.NoError(t, err)

	var q Point
	require.NoError(t, q.UnmarshalText(text))
	assert.True(t, p.Eq(q))
}

func TestMaxMin(t *testing.T) {
	a := FromFloat64(1.0)
	b := FromFloat64(2.0)

	assert.True(t, Max(a, b).Eq(b))
	assert.True(t, Max(b, a).Eq(b))
	assert.True(t, Min(a, b).Eq(a))
	assert.True(t, Min(a, a).Eq(a))
	assert.True(t, Max(Zero, a).Eq(a))
}
