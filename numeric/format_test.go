package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringReal(t *testing.T) {
	assert.Equal(t, "3", FromInt(3).String())
	assert.Equal(t, "-3", FromInt(-3).String())
}

func TestStringPureImaginary(t *testing.T) {
	assert.Equal(t, "i", FromImag(1).String())
	assert.Equal(t, "-i", FromImag(-1).String())
	assert.Equal(t, "5i", FromImag(5).String())
}

func TestStringMixed(t *testing.T) {
	assert.Equal(t, "3 + 4i", Complex{Real: 3, Imag: 4}.String())
	assert.Equal(t, "3 - 4i", Complex{Real: 3, Imag: -4}.String())
}
