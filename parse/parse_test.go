package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"computor.dev/computor/config"
	"computor.dev/computor/numeric"
	"computor.dev/computor/poly"
	"computor.dev/computor/resolve"
)

func TestPlainArithmetic(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	v, err := ip.Parse("2 + 3 * 4")
	assert.NoError(t, err)
	assert.Equal(t, numeric.FromInt(14), v)
}

func TestImaginaryLiteralsEvaluate(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	v, err := ip.Parse("2 + 3i")
	assert.NoError(t, err)
	assert.Equal(t, numeric.Complex{Real: 2, Imag: 3}, v)

	v, err = ip.Parse("i")
	assert.NoError(t, err)
	assert.Equal(t, numeric.FromImag(1), v)
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	v, err := ip.Parse("(2 + 3) * 4")
	assert.NoError(t, err)
	assert.Equal(t, numeric.FromInt(20), v)
}

func TestUnaryMinusBindsTighterThanPower(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	v, err := ip.Parse("-2^2")
	assert.NoError(t, err)
	c := v.(numeric.Complex)
	assert.Equal(t, 4.0, c.Real)
}

func TestPowerIsRightAssociative(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	v, err := ip.Parse("2^3^2")
	assert.NoError(t, err)
	assert.Equal(t, numeric.FromInt(512), v)
}

func TestUnboundNameWithoutEqualsIsResolveError(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	_, err := ip.Parse("x + 1")
	assert.Error(t, err)
}

func TestEqualsBindsVariableAndReducesToPolynomial(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	v, err := ip.Parse("5 * X + 4 = 1")
	assert.NoError(t, err)
	p, ok := v.(poly.Polynomial)
	assert.True(t, ok)
	assert.Equal(t, 1.0, p.Degree())
}

func TestScenarioSixXOverXEqualsOne(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	v, err := ip.Parse("x/x=1")
	assert.NoError(t, err)
	p := v.(poly.Polynomial)
	assert.Equal(t, "0", p.String())
	conf := &config.Config{}
	text := resolve.SolutionText(p, conf)
	assert.Contains(t, text, "All real numbers are solutions, except x=0")
}

func TestScenarioEightNonNaturalDegrees(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	v, err := ip.Parse("x ^ -1 = 25 + x ^ 2")
	assert.NoError(t, err)
	p := v.(poly.Polynomial)
	assert.True(t, p.HasUnsupportedDegrees())
}

func TestFailedParseDoesNotLeakVariableBindings(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	_, err := ip.Parse("y = (1 +")
	assert.Error(t, err)
	_, lookupErr := ip.Parse("y + 1")
	assert.Error(t, lookupErr)
}

func TestVariablePersistsAcrossLinesOnceBound(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	_, err := ip.Parse("x = 2")
	assert.NoError(t, err)
	v, err := ip.Parse("x + 1")
	assert.NoError(t, err)
	_ = v
}

func TestUnexpectedTokenIsSyntaxError(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	_, err := ip.Parse("45 gbd gb")
	assert.Error(t, err)
}

func TestUnsupportedSymbolsReportNotImplemented(t *testing.T) {
	ip := NewInterpreter(&config.Config{})
	_, err := ip.Parse("sin(2)")
	assert.Error(t, err)
}
