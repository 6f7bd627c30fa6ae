package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariableString(t *testing.T) {
	assert.Equal(t, "X", NewVariable("X").String())
	assert.Equal(t, "1", NewVariable("X").Pow(0).String())
	assert.Equal(t, "X^2", NewVariable("X").Pow(2).String())
}

func TestVariableKeyCaseFolds(t *testing.T) {
	assert.Equal(t, NewVariable("x").Key(), NewVariable("X").Key())
}

func TestVariablePowScalesDegree(t *testing.T) {
	v := NewVariable("X").Pow(2)
	assert.Equal(t, 2.0, v.Degree)
	assert.Equal(t, 4.0, v.Pow(2).Degree)
}
