package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"computor.dev/computor/config"
)

func TestRoundSnapsNearIntegers(t *testing.T) {
	conf := &config.Config{}
	assert.Equal(t, 3.0, Round(2.9999999, conf))
	assert.Equal(t, 3.0, Round(3.0000001, conf))
	assert.Equal(t, -3.0, Round(-2.9999999, conf))
}

func TestRoundLeavesNonIntegersAlone(t *testing.T) {
	conf := &config.Config{}
	assert.Equal(t, 2.5, Round(2.5, conf))
}
