package hashmap

// entry represents a single key-value pair and is a node of a bucket chain at the same time.
// It exclusively owns the rest of its chain through next.
type entry struct {
	key   string
	value string
	next  *entry
}

func newEntry(key, value string) *entry {
	return &entry{
		key:   key,
		value: value,
	}
}

// release drops the entry's data and its successor link
func (ent *entry) release() {
	ent.key = ""
	ent.value = ""
	ent.next = nil
}
