package mapreduce

import "github.com/spaolacci/murmur3"

// DefaultPartition is the multiplicative string hash (djb2: seed 5381,
// multiplier 33) reduced modulo partitions. It is used whenever New is
// given a nil PartitionFunc.
func DefaultPartition(key string, partitions int) int {
	hash := uint64(5381)
	for i := 0; i < len(key); i++ {
		hash = hash*33 + uint64(key[i])
	}
	return int(hash % uint64(partitions))
}

// Murmur3Partition is an alternative partitioner with better spread on
// short similar keys. Same contract as DefaultPartition.
func Murmur3Partition(key string, partitions int) int {
	return int(murmur3.Sum64([]byte(key)) % uint64(partitions))
}
