package hashmap

// Table represents the interface every string hash table provided by this package has to implement
type Table interface {
	// Capacity returns the amount of buckets
	Capacity() int

	// Size returns the amount of stored key-value pairs
	Size() int

	// Has returns whether a value is assigned to the given key
	Has(key string) bool

	// Retrieve returns the value assigned to the given key and a boolean indicating whether the key is stored at all
	Retrieve(key string) (string, bool)

	// Insert assigns the value to the given key, replacing any previously stored pair with the same key
	Insert(key, value string)

	// Remove deletes the pair stored under the given key; removing a missing key is a no-op
	Remove(key string)

	// Walk calls fn for every stored pair until it returns false.
	// No particular order is guaranteed.
	Walk(fn func(bucket int, key, value string) bool)
}
