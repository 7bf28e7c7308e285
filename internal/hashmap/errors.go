package hashmap

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity  = errors.New("the table capacity has to be a positive integer")
	ErrInvalidModulus   = errors.New("the hash modulus has to be a positive integer")
	ErrCapacityOverflow = errors.New("the doubled table capacity does not fit into an int")
	ErrTableDestroyed   = errors.New("the table has been destroyed and may no longer be used")
)

var (
	ErrChainCycle     = errors.New("the chain does not terminate")
	ErrMisplacedEntry = errors.New("the entry is stored in a bucket its key does not hash to")
	ErrDuplicateKey   = errors.New("the key is stored more than once")
	ErrSizeMismatch   = errors.New("the size counter does not match the amount of reachable entries")
)

// IntegrityError represents a single violation found while checking the chains of a table
type IntegrityError struct {
	Wrapping error
	Bucket   int
	Key      string
}

func (err *IntegrityError) Error() string {
	return fmt.Sprintf("bucket %d, key %q: %s", err.Bucket, err.Key, err.Wrapping.Error())
}

func (err *IntegrityError) Unwrap() error {
	return err.Wrapping
}
