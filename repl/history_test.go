package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingPrevNext(t *testing.T) {
	r := NewRing(3)
	r.Add("a")
	r.Add("b")
	r.Add("c")

	line, ok := r.Prev()
	assert.True(t, ok)
	assert.Equal(t, "c", line)

	line, ok = r.Prev()
	assert.True(t, ok)
	assert.Equal(t, "b", line)

	line, ok = r.Next()
	assert.True(t, ok)
	assert.Equal(t, "c", line)

	_, ok = r.Next()
	assert.False(t, ok)
}

func TestRingEvictsOldestBeyondCapacity(t *testing.T) {
	r := NewRing(2)
	r.Add("a")
	r.Add("b")
	r.Add("c")
	line, ok := r.Prev()
	assert.True(t, ok)
	assert.Equal(t, "c", line)
	line, ok = r.Prev()
	assert.True(t, ok)
	assert.Equal(t, "b", line)
	_, ok = r.Prev()
	assert.False(t, ok)
}
