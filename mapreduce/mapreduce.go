package mapreduce

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// MapReduce runs user map and reduce callbacks over in-memory
// partitions. All run state lives on the value, so independent
// MapReduce values may run concurrently in one process.
type MapReduce struct {
	mapFn   MapFunc
	mappers int

	reduceFn ReduceFunc
	reducers int

	partitionFn PartitionFunc

	stats Stats
}

// New configures a run. mappers caps map-phase concurrency, reducers
// sets the partition count (one reduce worker per partition).
// partitionFn may be nil, in which case DefaultPartition is used.
func New(mapFn MapFunc, reduceFn ReduceFunc, mappers, reducers int, partitionFn PartitionFunc) (*MapReduce, error) {
	if mapFn == nil {
		return nil, errors.New("mapreduce: nil map func")
	}
	if reduceFn == nil {
		return nil, errors.New("mapreduce: nil reduce func")
	}
	if mappers < 1 {
		return nil, fmt.Errorf("mapreduce: mapper count must be positive, got %d", mappers)
	}
	if reducers < 1 {
		return nil, fmt.Errorf("mapreduce: reducer count must be positive, got %d", reducers)
	}
	if partitionFn == nil {
		partitionFn = DefaultPartition
	}

	return &MapReduce{
		mapFn:       mapFn,
		mappers:     mappers,
		reduceFn:    reduceFn,
		reducers:    reducers,
		partitionFn: partitionFn,
	}, nil
}

// Stats returns the run counters.
func (mr *MapReduce) Stats() *Stats {
	return &mr.stats
}

// Run executes one full map/reduce cycle over units and blocks until
// the reduce phase has finished and every partition is released.
//
// Units are distributed round-robin over exactly mr.mappers workers,
// each processed once. The reduce phase starts only after every mapper
// exited. A panicking callback is not recovered: it takes the process
// down, and no failed unit is ever retried.
func (mr *MapReduce) Run(ctx context.Context, units []string) error {
	parts := make([]*partition, mr.reducers)
	for i := range parts {
		parts[i] = newPartition()
	}

	// teardown happens unconditionally, even for values the reduce
	// callbacks never drained
	defer func() {
		for _, p := range parts {
			p.clear()
		}
	}()

	// emit copies nothing under the lock except the append itself: no
	// user code runs while a partition is held
	emit := func(key, value string) {
		p := parts[mr.partitionFn(key, mr.reducers)]
		p.mu.Lock()
		p.insert(key, value)
		p.mu.Unlock()
		mr.stats.PairsEmitted.Add(1)
	}

	// map phase
	in := newQueue[string](mr.mappers)

	var mapWg sync.WaitGroup
	for id := range mr.mappers {
		forkMapper(ctx, &mapWg, mr.mapFn, emit, &mr.stats, id, in)
	}

	for _, unit := range units {
		in.Push(ctx, unit)
	}
	in.Close()

	mapWg.Wait()
	slog.Info("map phase done", "stats", mr.stats.String())

	// reduce phase: worker i is the only one ever given partition i
	var reduceWg sync.WaitGroup
	for id := range mr.reducers {
		forkReducer(ctx, &reduceWg, mr.reduceFn, &mr.stats, id, parts[id])
	}

	reduceWg.Wait()
	slog.Info("reduce phase done", "stats", mr.stats.String())

	return nil
}
