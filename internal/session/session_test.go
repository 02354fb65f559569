package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	ID int
}

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore[result]()

	v, ok := s.Latest()
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestMemoryStoreOverwrites(t *testing.T) {
	s := NewMemoryStore[result]()

	first := &result{ID: 1}
	s.Save(first)
	v, ok := s.Latest()
	require.True(t, ok)
	assert.Same(t, first, v)

	second := &result{ID: 2}
	s.Save(second)
	v, ok = s.Latest()
	require.True(t, ok)
	assert.Same(t, second, v)
}

func TestMemoryStoreConcurrentWriters(t *testing.T) {
	s := NewMemoryStore[result]()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.Save(&result{ID: id})
		}(i)
	}
	wg.Wait()

	v, ok := s.Latest()
	require.True(t, ok)
	assert.GreaterOrEqual(t, v.ID, 1)
	assert.LessOrEqual(t, v.ID, 50)
}

func TestMemoryStoreSatisfiesStore(t *testing.T) {
	var _ Store[result] = NewMemoryStore[result]()
}
