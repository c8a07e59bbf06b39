package monitor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(addresses ...string) *Store {
	records := make([]*HostRecord, len(addresses))
	for i, addr := range addresses {
		records[i] = NewHostRecord(addr, "", "", 10)
	}
	return NewStore(records)
}

func TestStoreOrder(t *testing.T) {
	s := newTestStore("10.0.0.2", "10.0.0.1", "10.0.0.3")

	require.Equal(t, 3, s.Len())
	assert.Equal(t, "10.0.0.2", s.Records()[0].Address())
	assert.Equal(t, "10.0.0.1", s.Records()[1].Address())
	assert.Equal(t, "10.0.0.3", s.Records()[2].Address())

	views := s.Snapshot()
	require.Len(t, views, 3)
	assert.Equal(t, "10.0.0.2", views[0].Address)
}

func TestStoreGet(t *testing.T) {
	s := newTestStore("1.1.1.1", "8.8.8.8")

	require.NotNil(t, s.Get("8.8.8.8"))
	assert.Equal(t, "8.8.8.8", s.Get("8.8.8.8").Address())
	assert.Nil(t, s.Get("9.9.9.9"))
}

func TestStoreSnapshotUnderConcurrentWrites(t *testing.T) {
	s := newTestStore("a", "b", "c", "d")

	var wg sync.WaitGroup
	stop := make(chan struct{})

	// One writer per record, like the real prober layout.
	for _, r := range s.Records() {
		wg.Add(1)
		go func(r *HostRecord) {
			defer wg.Done()
			for i := 0; ; i++ {
				select {
				case <-stop:
					return
				default:
				}
				if i%3 == 0 {
					r.ApplySample(Sample{OK: false})
				} else {
					r.ApplySample(Sample{Millis: float64(i % 100), OK: true})
				}
			}
		}(r)
	}

	// Reader: every view must be internally consistent even mid-write.
	for i := 0; i < 200; i++ {
		for _, view := range s.Snapshot() {
			if view.Stats.SampleCount == 0 {
				continue
			}
			assert.GreaterOrEqual(t, view.Stats.SampleCount, len(view.Window))
			if view.Stats.HasAverage {
				assert.Greater(t, view.Stats.SuccessRate, 0.0)
			} else {
				assert.Equal(t, 0.0, view.Stats.SuccessRate)
			}
		}
	}

	close(stop)
	wg.Wait()
}
