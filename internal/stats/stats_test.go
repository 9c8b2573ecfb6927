package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astra-gui/astraloc/internal/stats"
)

func TestAdd_Commutative(t *testing.T) {
	t.Parallel()

	a := stats.Stats{Code: 120, Docs: 30}
	b := stats.Stats{Code: 7, Docs: 0}

	assert.Equal(t, a.Add(b), b.Add(a))
}

func TestAdd_Associative(t *testing.T) {
	t.Parallel()

	a := stats.Stats{Code: 1, Docs: 2}
	b := stats.Stats{Code: 3, Docs: 4}
	c := stats.Stats{Code: 5, Docs: 6}

	assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
}

func TestAdd_ZeroIdentity(t *testing.T) {
	t.Parallel()

	a := stats.Stats{Code: 42, Docs: 9}

	assert.Equal(t, a, a.Add(stats.Stats{}))
	assert.Equal(t, a, stats.Stats{}.Add(a))
}

func TestTotal(t *testing.T) {
	t.Parallel()

	s := stats.Stats{Code: 120, Docs: 30}

	expectedTotal := uint64(150)
	assert.Equal(t, expectedTotal, s.Total())
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, stats.Stats{}.IsZero())
	assert.False(t, stats.Stats{Code: 1}.IsZero())
	assert.False(t, stats.Stats{Docs: 1}.IsZero())
}
