// Package storage provides the key-value persistence port used by the
// history, watchlist, settings and user profile services. Values are
// opaque blobs; callers own the serialization format.
package storage

// Store is a durable key-value store. Get reports presence explicitly
// so an absent key is never confused with an empty value.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
