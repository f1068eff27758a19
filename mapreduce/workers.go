package mapreduce

import (
	"context"
	"log/slog"
	"sync"
)

func forkMapper(ctx context.Context, wg *sync.WaitGroup, mapFn MapFunc, emit EmitFunc, stats *Stats, id int, in *queue[string]) {
	m := &mapper{
		id:    id,
		mapFn: mapFn,
		emit:  emit,
		stats: stats,
		in:    in,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		m.run(ctx)
	}()
}

type mapper struct {
	id    int
	mapFn MapFunc
	emit  EmitFunc
	stats *Stats

	in *queue[string]
}

func (m *mapper) run(ctx context.Context) {
	for {
		slog.Debug("mapper: pulling unit...", "id", m.id)
		unit, open := m.in.Pull(ctx, m.id)
		if !open {
			slog.Debug("mapper: queue closed, exiting", "id", m.id)
			return
		}

		m.mapFn(ctx, unit, m.emit)
		m.stats.UnitsMapped.Add(1)
	}
}

func forkReducer(ctx context.Context, wg *sync.WaitGroup, reduceFn ReduceFunc, stats *Stats, id int, part *partition) {
	r := &reducer{
		id:       id,
		reduceFn: reduceFn,
		stats:    stats,
		part:     part,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		r.run(ctx)
	}()
}

type reducer struct {
	id       int
	reduceFn ReduceFunc
	stats    *Stats

	part *partition
}

// run visits every distinct key in the reducer's partition exactly
// once. No locks here: this reducer is the partition's only user once
// the map-phase barrier has passed.
func (r *reducer) run(ctx context.Context) {
	for _, key := range r.part.keys() {
		slog.Debug("reducer: reducing key", "id", r.id, "key", key)

		next := func() (string, bool) {
			val, ok := r.part.next(key)
			if ok {
				r.stats.ValuesRead.Add(1)
			}
			return val, ok
		}

		r.reduceFn(ctx, key, next)
		r.stats.KeysReduced.Add(1)
	}
}
