package state

import "context"

// Repository persists and restores the full application state. Every
// state-mutating operation ends with a Save: a full-snapshot write of all
// collections, not an incremental diff. Data volumes are small enough that
// this stays cheap.
type Repository interface {
	// Load restores the state from the store. Absent keys load as empty
	// collections; an absent session key loads as no session.
	Load(ctx context.Context) (*State, error)

	// Save serializes every collection to the store after running
	// session-sync. When no session is active the corresponding session key
	// is removed rather than written empty.
	Save(ctx context.Context, st *State) error

	// Wipe clears the underlying store completely.
	Wipe(ctx context.Context) error
}
