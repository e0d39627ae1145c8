// Package storage provides the durable key-value layer the entity
// stores persist through. Each store serializes its whole collection to
// a single JSON document under a namespaced key.
//
// Persistence is best-effort by contract: a failed Load is treated by
// callers as "no prior state" and a failed Save never rolls back the
// in-memory mutation that triggered it. If several processes share the
// same backing path, the last writer to a key wins; the adapters make
// no attempt at conflict resolution.
package storage

// Storage keys, one per store. The names mirror the documents found in
// persisted state from earlier versions of the application, so they
// must not change.
const (
	KeyAuth          = "auth-storage"
	KeyUsers         = "user-storage"
	KeyTasks         = "task-storage"
	KeyNotifications = "notification-storage"
	KeyMessages      = "message-storage"
)

// Adapter is the contract every storage backend implements.
type Adapter interface {
	// Load returns the document stored under key. The second return
	// value is false when no document exists, which is not an error.
	Load(key string) ([]byte, bool, error)

	// Save writes the document under key, replacing any prior value.
	Save(key string, data []byte) error
}
