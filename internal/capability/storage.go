package capability

import "context"

// Store is the persistence capability seam external backends implement. All
// operations take a context and block until done; loading an absent key is
// reported through the boolean, never as an error.
//
// Implementations must pass every value through a deep-copy boundary so
// stored and retrieved values never alias caller-held values.
type Store interface {
	// Save persists value under key, replacing any previous value.
	Save(ctx context.Context, key string, value any) error

	// Load reads the value under key into out (a pointer). The boolean is
	// false when the key is absent.
	Load(ctx context.Context, key string, out any) (bool, error)

	// Exists reports whether key holds a value.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
