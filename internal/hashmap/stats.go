package hashmap

import "github.com/hashicorp/go-multierror"

// Stats describes how the stored pairs are distributed over the buckets of a table
type Stats struct {
	Capacity     int
	Size         int
	UsedBuckets  int
	LongestChain int
	LoadFactor   float64
}

// Stats calculates the current bucket distribution statistics
func (obj *ChainedTable) Stats() Stats {
	obj.mustBeLive()
	stats := Stats{
		Capacity:   obj.capacity,
		Size:       obj.size,
		LoadFactor: float64(obj.size) / float64(obj.capacity),
	}
	for _, head := range obj.buckets {
		if head == nil {
			continue
		}
		stats.UsedBuckets++
		length := 0
		for cur := head; cur != nil; cur = cur.next {
			length++
		}
		if length > stats.LongestChain {
			stats.LongestChain = length
		}
	}
	return stats
}

// Check verifies the chain integrity of the table.
// Every chain has to terminate, every entry has to sit in the bucket its key hashes to, no key may be stored twice
// and the size counter has to match the amount of reachable entries.
// All violations are reported together; a nil error means the table is consistent.
func (obj *ChainedTable) Check() error {
	obj.mustBeLive()
	var result *multierror.Error
	seen := make(map[string]int, obj.size)
	reachable := 0

	for idx, head := range obj.buckets {
		// Floyd's cycle detection, the fast pointer runs two hops ahead
		slow, fast := head, head
		cyclic := false
		for fast != nil && fast.next != nil {
			slow = slow.next
			fast = fast.next.next
			if slow == fast {
				cyclic = true
				break
			}
		}
		if cyclic {
			result = multierror.Append(result, &IntegrityError{Wrapping: ErrChainCycle, Bucket: idx, Key: head.key})
			continue
		}

		for cur := head; cur != nil; cur = cur.next {
			reachable++
			if obj.index(cur.key) != idx {
				result = multierror.Append(result, &IntegrityError{Wrapping: ErrMisplacedEntry, Bucket: idx, Key: cur.key})
			}
			if _, ok := seen[cur.key]; ok {
				result = multierror.Append(result, &IntegrityError{Wrapping: ErrDuplicateKey, Bucket: idx, Key: cur.key})
			}
			seen[cur.key] = idx
		}
	}

	if reachable != obj.size {
		result = multierror.Append(result, &IntegrityError{Wrapping: ErrSizeMismatch, Bucket: -1})
	}
	return result.ErrorOrNil()
}
