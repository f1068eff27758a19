package mapreduce

import (
	"fmt"
	"strings"
	"sync"
)

// partition is one shard of the aggregation structure, owned by a
// single reducer. Mappers insert concurrently under mu during the map
// phase; the owning reducer drains it without locking afterwards,
// because the engine never hands a partition to more than one reducer.
type partition struct {
	mu      sync.Mutex
	entries map[string][]string
}

func newPartition() *partition {
	return &partition{entries: make(map[string][]string)}
}

// insert appends value to the key's entry, creating the entry on first
// use. The caller must hold mu.
func (p *partition) insert(key, value string) {
	p.entries[key] = append(p.entries[key], value)
}

// next pops the most recently inserted remaining value for key. It
// reports false once the key is drained, or if it never existed here.
// The entry itself is dropped together with its last value.
func (p *partition) next(key string) (string, bool) {
	vals := p.entries[key]
	if len(vals) == 0 {
		return "", false
	}

	val := vals[len(vals)-1]
	if len(vals) == 1 {
		delete(p.entries, key)
	} else {
		p.entries[key] = vals[:len(vals)-1]
	}

	return val, true
}

// keys returns the distinct keys currently stored, in map order.
func (p *partition) keys() []string {
	keys := make([]string, 0, len(p.entries))
	for key := range p.entries {
		keys = append(keys, key)
	}

	return keys
}

// clear drops every entry and value. Safe to call more than once.
func (p *partition) clear() {
	p.entries = nil
}

// dump renders the partition's contents for debugging.
func (p *partition) dump() string {
	var sb strings.Builder
	for key, vals := range p.entries {
		fmt.Fprintf(&sb, "key: %q, values: %q\n", key, vals)
	}

	return sb.String()
}
