package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"computor.dev/computor/config"
	"computor.dev/computor/numeric"
)

func TestReducedDropsZeroAndSortsConstantFirst(t *testing.T) {
	p := Polynomial{Terms: []Term{
		NewVariableTerm(NewVariable("X")),
		NewConstantTerm(numeric.FromInt(4)),
		NewConstantTerm(numeric.Zero),
	}}
	reduced := p.Reduced()
	assert.Len(t, reduced, 2)
	assert.Empty(t, reduced[0].Variables)
}

func TestReductionIdempotence(t *testing.T) {
	p := Polynomial{Terms: []Term{
		NewVariableTerm(NewVariable("X")),
		NewVariableTerm(NewVariable("X")),
		NewConstantTerm(numeric.FromInt(2)),
	}}
	once := Polynomial{Terms: p.Reduced()}.Reduced()
	twice := Polynomial{Terms: once}.Reduced()
	assert.Equal(t, once, twice)
}

func TestDegreeAndGetTerm(t *testing.T) {
	p := Polynomial{Terms: []Term{
		NewConstantTerm(numeric.FromInt(4)),
		NewVariableTerm(NewVariable("X")),
		NewVariableTerm(NewVariable("X").Pow(2)),
	}}
	assert.Equal(t, 2.0, p.Degree())
	assert.Equal(t, numeric.One, p.GetTerm(2).Coeff)
	assert.Equal(t, numeric.FromInt(4), p.GetTerm(0).Coeff)
}

func TestXOverXCollapsesToConstantOne(t *testing.T) {
	conf := &config.Config{}
	x := FromVariable(NewVariable("x"))
	got := x.Div(x, conf)
	reduced := got.Reduced()
	assert.Len(t, reduced, 1)
	assert.Empty(t, reduced[0].Variables)
	assert.Equal(t, numeric.One, reduced[0].Coeff)
}

func TestVariablesNonZeroCollectsNegativeDegrees(t *testing.T) {
	p := Polynomial{Terms: []Term{
		{Coeff: numeric.One, Variables: []Variable{{Name: "x", Degree: -1}}},
	}}
	assert.Equal(t, []string{"x"}, p.VariablesNonZero())
}

func TestStringScenario1(t *testing.T) {
	p := Polynomial{Terms: []Term{
		NewConstantTerm(numeric.FromFloat(5)),
		{Coeff: numeric.FromFloat(4), Variables: []Variable{NewVariable("X")}},
		{Coeff: numeric.FromFloat(-9.3), Variables: []Variable{NewVariable("X").Pow(2)}},
		Term{Coeff: numeric.FromFloat(-1), Variables: []Variable{NewVariable("X").Pow(0)}},
	}}
	assert.Equal(t, "4 + 4 * X - 9.3 * X^2", p.String())
}

func TestHasUnsupportedDegrees(t *testing.T) {
	natural := Polynomial{Terms: []Term{NewVariableTerm(NewVariable("x").Pow(2))}}
	assert.False(t, natural.HasUnsupportedDegrees())

	negative := Polynomial{Terms: []Term{NewVariableTerm(NewVariable("x").Pow(-1))}}
	assert.True(t, negative.HasUnsupportedDegrees())
}

func TestPowCapped(t *testing.T) {
	conf := &config.Config{}
	conf.SetMaxPowerExponent(2)
	p := FromVariable(NewVariable("x"))
	defer func() {
		assert.NotNil(t, recover())
	}()
	p.Pow(3, conf)
}
