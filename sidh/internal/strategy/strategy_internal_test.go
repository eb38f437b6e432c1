package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sidh-go/sidh/internal/curve"
)

func TestStackPushPopOrder(t *testing.T) {
	s := newStack(4)
	s.push(curve.ProjPoint{}, 1)
	s.push(curve.ProjPoint{}, 2)
	s.push(curve.ProjPoint{}, 3)

	_, idx := s.pop()
	assert.Equal(t, 3, idx)
	_, idx = s.pop()
	assert.Equal(t, 2, idx)
	_, idx = s.pop()
	assert.Equal(t, 1, idx)
}

func TestStackPanicsOnOverflow(t *testing.T) {
	s := newStack(1)
	s.push(curve.ProjPoint{}, 0)
	assert.Panics(t, func() { s.push(curve.ProjPoint{}, 1) })
}
