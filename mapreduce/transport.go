package mapreduce

import (
	"context"
	"log"

	"github.com/tymbaca/localmr/pkg/caller"
	"github.com/tymbaca/localmr/pkg/tracer"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// queue hands work to a fixed pool of workers, one channel per worker,
// assigned round-robin. There is a single producer (the engine), so
// Push and Close must not be called concurrently.
type queue[T any] struct {
	peers map[int]chan T
	next  int
}

func newQueue[T any](workers int) *queue[T] {
	peers := make(map[int]chan T)
	for i := range workers {
		peers[i] = make(chan T, 1)
	}

	return &queue[T]{peers: peers}
}

// Push hands data to the next worker in round-robin order. Blocks
// until that worker takes it (or the context is done).
func (q *queue[T]) Push(ctx context.Context, data T) {
	ctx, span := tracer.Start(ctx, caller.Name(), trace.WithAttributes(attribute.Int("id", q.next)))
	defer span.End()

	ch := q.peers[q.next]
	q.next = (q.next + 1) % len(q.peers)

	select {
	case <-ctx.Done():
	case ch <- data:
	}
}

// Pull receives the next unit assigned to worker id. Blocks until the
// producer pushes one; reports false once the queue is closed and the
// worker's channel is drained.
func (q *queue[T]) Pull(ctx context.Context, id int) (data T, open bool) {
	ctx, span := tracer.Start(ctx, caller.Name(), trace.WithAttributes(attribute.Int("id", id)))
	defer span.End()

	ch, ok := q.peers[id]
	if !ok {
		log.Panicf("pull: no worker for id %d", id)
	}

	select {
	case <-ctx.Done():
		return data, false
	case data, open = <-ch:
		return data, open
	}
}

// Close signals every worker that no more data is coming. The producer
// must not use the queue after calling Close.
func (q *queue[T]) Close() {
	for _, ch := range q.peers {
		close(ch)
	}
}
