package hashmap

import (
	"github.com/rs/zerolog"
	"math"
)

// ChainedTable implements the Table interface using a fixed amount of buckets and separate chaining.
// Every bucket exclusively owns a singly linked chain of entries; colliding keys are appended to the chain's tail.
// The capacity only changes through Resize, which returns a new table and destroys the old one.
// A ChainedTable is not safe for concurrent use.
type ChainedTable struct {
	capacity  int
	buckets   []*entry
	size      int
	destroyed bool
	logger    zerolog.Logger
}

var _ Table = (*ChainedTable)(nil)

// Option configures a ChainedTable on creation
type Option func(table *ChainedTable)

// WithLogger makes the table report its lifecycle events to the given logger
func WithLogger(logger zerolog.Logger) Option {
	return func(table *ChainedTable) {
		table.logger = logger
	}
}

// New creates a new empty table with the given amount of buckets
func New(capacity int, opts ...Option) (*ChainedTable, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	table := &ChainedTable{
		capacity: capacity,
		buckets:  make([]*entry, capacity),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(table)
	}
	table.logger.Debug().Int("capacity", capacity).Msg("created table")
	return table, nil
}

func (obj *ChainedTable) mustBeLive() {
	if obj.destroyed {
		panic(ErrTableDestroyed)
	}
}

func (obj *ChainedTable) index(key string) int {
	return int(Hash(key, obj.capacity))
}

// Capacity returns the amount of buckets
func (obj *ChainedTable) Capacity() int {
	obj.mustBeLive()
	return obj.capacity
}

// Size returns the amount of stored key-value pairs
func (obj *ChainedTable) Size() int {
	obj.mustBeLive()
	return obj.size
}

// Destroyed reports whether the table has been destroyed, either explicitly or by being resized
func (obj *ChainedTable) Destroyed() bool {
	return obj.destroyed
}

// Has returns whether a value is assigned to the given key
func (obj *ChainedTable) Has(key string) bool {
	_, ok := obj.Retrieve(key)
	return ok
}

// Retrieve returns the value assigned to the given key and a boolean indicating whether the key is stored at all
func (obj *ChainedTable) Retrieve(key string) (string, bool) {
	obj.mustBeLive()
	for cur := obj.buckets[obj.index(key)]; cur != nil; cur = cur.next {
		if cur.key == key {
			return cur.value, true
		}
	}
	return "", false
}

// Insert assigns the value to the given key.
// An entry already holding the key is removed first and the pair is appended to the end of its bucket's chain as a
// fresh entry.
func (obj *ChainedTable) Insert(key, value string) {
	obj.mustBeLive()
	if obj.Has(key) {
		obj.Remove(key)
	}

	ent := newEntry(key, value)
	idx := obj.index(key)
	obj.size++

	if obj.buckets[idx] == nil {
		obj.buckets[idx] = ent
		return
	}
	tail := obj.buckets[idx]
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = ent
}

// Remove deletes the entry holding the given key.
// Removing a key that is not stored is a no-op.
func (obj *ChainedTable) Remove(key string) {
	obj.mustBeLive()
	idx := obj.index(key)
	head := obj.buckets[idx]
	if head == nil {
		return
	}

	if head.key == key {
		obj.buckets[idx] = head.next
		head.release()
		obj.size--
		return
	}

	for prev := head; prev.next != nil; prev = prev.next {
		if prev.next.key == key {
			found := prev.next
			prev.next = found.next
			found.release()
			obj.size--
			return
		}
	}
}

// Walk calls fn for every stored pair, bucket by bucket and in chain order inside a bucket.
// Walking stops as soon as fn returns false. fn must not modify the table.
func (obj *ChainedTable) Walk(fn func(bucket int, key, value string) bool) {
	obj.mustBeLive()
	for idx, head := range obj.buckets {
		for cur := head; cur != nil; cur = cur.next {
			if !fn(idx, cur.key, cur.value) {
				return
			}
		}
	}
}

// Pairs returns a snapshot of all stored key-value pairs
func (obj *ChainedTable) Pairs() map[string]string {
	pairs := make(map[string]string, obj.Size())
	obj.Walk(func(_ int, key, value string) bool {
		pairs[key] = value
		return true
	})
	return pairs
}

// Destroy releases every entry and the bucket array.
// The table must not be used afterwards.
func (obj *ChainedTable) Destroy() {
	obj.mustBeLive()
	released := 0
	for idx, head := range obj.buckets {
		cur := head
		for cur != nil {
			next := cur.next
			cur.release()
			released++
			cur = next
		}
		obj.buckets[idx] = nil
	}
	obj.buckets = nil
	obj.size = 0
	obj.destroyed = true
	obj.logger.Debug().Int("capacity", obj.capacity).Int("released", released).Msg("destroyed table")
}

// Resize creates a new table with twice the capacity, re-inserts every stored pair into it and destroys this table.
// Pairs may land in different buckets as their indices are recomputed against the new capacity.
// If the doubled capacity overflows, ErrCapacityOverflow is returned and this table stays usable.
func (obj *ChainedTable) Resize() (*ChainedTable, error) {
	obj.mustBeLive()
	if obj.capacity > math.MaxInt/2 {
		return nil, ErrCapacityOverflow
	}

	resized, err := New(obj.capacity*2, WithLogger(obj.logger))
	if err != nil {
		return nil, err
	}
	obj.Walk(func(_ int, key, value string) bool {
		resized.Insert(key, value)
		return true
	})

	obj.logger.Debug().
		Int("old_capacity", obj.capacity).
		Int("new_capacity", resized.capacity).
		Int("migrated", resized.size).
		Msg("resized table")
	obj.Destroy()
	return resized, nil
}
