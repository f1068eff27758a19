package mapreduce

import "context"

// MapFunc processes one work unit and publishes intermediate pairs
// through emit. It may be invoked concurrently for different units.
type MapFunc func(ctx context.Context, unit string, emit EmitFunc)

// ReduceFunc is invoked exactly once per distinct key. It drains the
// key's values by calling next until next reports false.
type ReduceFunc func(ctx context.Context, key string, next NextFunc)

// PartitionFunc maps a key to a partition index in [0, partitions).
// It must be a pure function of its inputs: the same key lands in the
// same partition for the whole run.
type PartitionFunc func(key string, partitions int) int

// EmitFunc publishes one intermediate (key, value) pair. Safe for
// concurrent use from any number of mappers.
type EmitFunc func(key, value string)

// NextFunc returns and removes the next pending value for the key the
// reduce call was given, in reverse emission order (last emitted,
// first read). It reports false once the key is drained.
type NextFunc func() (string, bool)
