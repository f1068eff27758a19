package mapreduce

import (
	"fmt"
	"sync/atomic"
)

// Stats counts the work done by a MapReduce value. Workers update the
// fields atomically while a run is in flight; counters accumulate
// across runs.
type Stats struct {
	UnitsMapped  atomic.Uint64
	PairsEmitted atomic.Uint64
	KeysReduced  atomic.Uint64
	ValuesRead   atomic.Uint64
}

func (s *Stats) String() string {
	um := s.UnitsMapped.Load()
	pe := s.PairsEmitted.Load()
	kr := s.KeysReduced.Load()
	vr := s.ValuesRead.Load()
	return fmt.Sprintf("UnitsMapped: %d, PairsEmitted: %d, KeysReduced: %d, ValuesRead: %d", um, pe, kr, vr)
}
