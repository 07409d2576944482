package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New()
	b := New()

	require.False(t, a.IsZero())
	require.False(t, b.IsZero())
	require.NotEqual(t, a, b)
	require.Len(t, a.String(), 26, "canonical ULIDs are 26 chars")
}

func TestNewIsMonotonicWithinSameInstant(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	prev := NewAt(at)
	for range 100 {
		next := NewAt(at)
		require.Less(t, prev.String(), next.String(),
			"same-millisecond IDs must still sort")
		prev = next
	}
}

func TestNewConcurrentUnique(t *testing.T) {
	const n = 200

	var wg sync.WaitGroup
	ids := make([]ID, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = New()
		}()
	}
	wg.Wait()

	seen := make(map[ID]struct{}, n)
	for _, id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestParse(t *testing.T) {
	valid := New().String()

	t.Run("round trip", func(t *testing.T) {
		id, err := Parse(valid)
		require.NoError(t, err)
		require.Equal(t, valid, id.String())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		id, err := Parse("  " + valid + " ")
		require.NoError(t, err)
		require.Equal(t, valid, id.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, s := range []string{"", "not-a-ulid", "0123"} {
			_, err := Parse(s)
			require.ErrorIs(t, err, ErrInvalid)
		}
	})
}

func TestTime(t *testing.T) {
	at := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	id := NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
	require.True(t, ID("junk").Time().IsZero())
}
