package storage

// Store is a bucketed key/value ledger store. Every Update runs atomically:
// either every write made by fn is committed, or (when fn returns an error)
// none are. Updates are serialized; View may run concurrently with other views.
type Store interface {
	// Update runs fn inside a read-write transaction.
	Update(fn func(tx Tx) error) error

	// View runs fn inside a read-only transaction.
	View(fn func(tx Tx) error) error

	// Close releases the underlying resources.
	Close() error
}

// Tx is the per-transaction view of the store. Keys and values passed to fn
// by Scan are only valid for the duration of the call.
type Tx interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(bucket, key []byte) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(bucket, key, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(bucket, key []byte) error

	// Scan calls fn for every key with the given prefix, in ascending key order.
	// An empty prefix scans the whole bucket. Returning an error from fn stops the scan.
	Scan(bucket, prefix []byte, fn func(key, value []byte) error) error
}
