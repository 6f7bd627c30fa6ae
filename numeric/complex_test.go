package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"computor.dev/computor/config"
)

func TestParse(t *testing.T) {
	c, err := Parse("9.3")
	assert.NoError(t, err)
	assert.Equal(t, Complex{Real: 9.3}, c)

	_, err = Parse("not-a-number")
	assert.Error(t, err)
}

func TestParseImaginary(t *testing.T) {
	c, err := Parse("5i")
	assert.NoError(t, err)
	assert.Equal(t, FromImag(5), c)

	c, err = Parse("i")
	assert.NoError(t, err)
	assert.Equal(t, FromImag(1), c)

	c, err = Parse("2.5i")
	assert.NoError(t, err)
	assert.Equal(t, FromImag(2.5), c)

	_, err = Parse("xi")
	assert.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a := FromInt(3)
	b := FromInt(4)
	assert.Equal(t, FromInt(7), a.Add(b))
	assert.Equal(t, FromInt(-1), a.Sub(b))
	assert.Equal(t, FromInt(12), a.Mul(b))
}

func TestDivByZero(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r)
	}()
	FromInt(1).Div(Zero, nil)
}

func TestDivRoundsAndNormalizes(t *testing.T) {
	conf := &config.Config{}
	got := FromInt(10).Div(FromInt(4), conf)
	assert.Equal(t, 2.5, got.Real)
	assert.Equal(t, 0.0, got.Imag)
}

func TestModRequiresReal(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r)
	}()
	FromImag(1).Mod(FromInt(2))
}

func TestModWraps(t *testing.T) {
	got := FromInt(10).Mod(FromInt(3))
	assert.Equal(t, FromInt(1), got)
}

func TestAbs(t *testing.T) {
	assert.Equal(t, FromInt(5), FromInt(-5).Abs())
	assert.Equal(t, FromInt(5), FromInt(5).Abs())
	imagVal := FromImag(3)
	assert.Equal(t, imagVal, imagVal.Abs())
}
