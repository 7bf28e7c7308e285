package random

import "github.com/google/uuid"

// Keys generates n distinct keys, each one being a random UUID in its canonical string form
func Keys(n int) []string {
	keys := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(keys) < n {
		key := uuid.NewString()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// Pairs generates n key-value pairs with distinct keys and random printable values of the given length
func Pairs(n, valueLength int) map[string]string {
	pairs := make(map[string]string, n)
	for _, key := range Keys(n) {
		pairs[key] = String(valueLength, CharsetPrintable)
	}
	return pairs
}
