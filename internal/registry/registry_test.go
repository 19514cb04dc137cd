package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegister_FreshLoadIsZero(t *testing.T) {
	r := New()
	now := time.Now()
	r.Register("e1", RoleMapper, 3, now)

	w, ok := r.Get("e1")
	require.True(t, ok)
	require.Equal(t, 0, w.CurrentLoad)
	require.Equal(t, 3, w.Capacity)
}

func TestRegister_ReRegistrationResetsLoad(t *testing.T) {
	r := New()
	now := time.Now()
	r.Register("e1", RoleMapper, 3, now)
	require.True(t, r.TryCharge("e1"))

	r.Register("e1", RoleMapper, 5, now.Add(time.Second))
	w, _ := r.Get("e1")
	require.Equal(t, 0, w.CurrentLoad)
	require.Equal(t, 5, w.Capacity)
}

func TestTryCharge_RespectsCapacity(t *testing.T) {
	r := New()
	now := time.Now()
	r.Register("e1", RoleMapper, 1, now)

	require.True(t, r.TryCharge("e1"))
	require.False(t, r.TryCharge("e1"))

	w, _ := r.Get("e1")
	require.Equal(t, 1, w.CurrentLoad)
}

func TestTryCharge_UnknownWorker(t *testing.T) {
	r := New()
	require.False(t, r.TryCharge("ghost"))
}

func TestDischarge_ClampsAtZero(t *testing.T) {
	r := New()
	now := time.Now()
	r.Register("e1", RoleMapper, 2, now)

	r.Discharge("e1")
	r.Discharge("e1")
	r.Discharge("e1")

	w, _ := r.Get("e1")
	require.Equal(t, 0, w.CurrentLoad)
}

func TestDischarge_UnknownWorkerIsNoop(t *testing.T) {
	r := New()
	require.NotPanics(t, func() { r.Discharge("ghost") })
}

func TestTouch_UnknownWorkerIsNoop(t *testing.T) {
	r := New()
	require.NotPanics(t, func() { r.Touch("ghost", time.Now()) })
}

func TestSweep_EvictsDeadWorkers(t *testing.T) {
	r := New()
	base := time.Now()
	r.Register("alive", RoleMapper, 1, base)
	r.Register("dead", RoleReducer, 1, base)

	r.Touch("alive", base.Add(14*time.Second))

	evicted := r.Sweep(base.Add(16*time.Second), 15*time.Second)
	require.ElementsMatch(t, []string{"dead"}, evicted)

	_, ok := r.Get("dead")
	require.False(t, ok)
	_, ok = r.Get("alive")
	require.True(t, ok)
}

func TestSweep_BoundaryIsExclusive(t *testing.T) {
	r := New()
	base := time.Now()
	r.Register("e1", RoleMapper, 1, base)

	// exactly at the threshold: not yet dead (spec requires now-last_seen > threshold)
	evicted := r.Sweep(base.Add(15*time.Second), 15*time.Second)
	require.Empty(t, evicted)

	evicted = r.Sweep(base.Add(15*time.Second+time.Nanosecond), 15*time.Second)
	require.Equal(t, []string{"e1"}, evicted)
}

func TestCounts(t *testing.T) {
	r := New()
	now := time.Now()
	r.Register("m1", RoleMapper, 1, now)
	r.Register("m2", RoleMapper, 1, now)
	r.Register("r1", RoleReducer, 1, now)

	mappers, reducers := r.Counts()
	require.Equal(t, 2, mappers)
	require.Equal(t, 1, reducers)
}
