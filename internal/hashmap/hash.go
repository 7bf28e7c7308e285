package hashmap

const djb2Seed uint64 = 5381

// Hash maps the given key to a bucket index in [0, modulus) using the djb2 string hash.
// The result only depends on the key bytes and the modulus, so chain placement is reproducible across resizes.
// A modulus smaller than 1 is a programming error and results in a panic.
func Hash(key string, modulus int) uint {
	if modulus <= 0 {
		panic(ErrInvalidModulus)
	}
	hash := djb2Seed
	for i := 0; i < len(key); i++ {
		hash = (hash << 5) + hash + uint64(key[i])
	}
	return uint(hash % uint64(modulus))
}
