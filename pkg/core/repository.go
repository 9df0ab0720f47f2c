package core

import "context"

// SnapshotRepository defines the contract for loading and persisting the
// business snapshot. Adhering to this interface keeps the core independent of
// the underlying storage mechanism (filesystem, SQL, S3, etc).
type SnapshotRepository interface {
	// Load retrieves the persisted snapshot.
	// It returns ErrSnapshotNotFound when no prior snapshot exists; the caller
	// decides default construction, the repository never invents state.
	Load(ctx context.Context) (*Snapshot, error)

	// Save persists the full snapshot. A failed save must be reported; a
	// learned fact or order that silently fails to persist is a correctness
	// violation, not a recoverable UX case.
	Save(ctx context.Context, snap *Snapshot) error

	// Initialize ensures the underlying storage is ready (e.g. create
	// directories, seed a default file, schema migration).
	Initialize(ctx context.Context) error
}

// EventType represents the type of change observed in the backing storage.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to the persisted snapshot.
type Event struct {
	Type      EventType
	Name      string
	Timestamp int64 // Unix timestamp
}

// Watchable defines an interface for repositories that can report external
// changes to the snapshot (e.g. a staff member editing the data file).
type Watchable interface {
	// Watch emits an Event whenever the stored snapshot matching pattern
	// changes. The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Archiver defines an optional secondary sink for learned knowledge.
// Implementations append; they never read back into the resolution path.
type Archiver interface {
	ArchiveQA(ctx context.Context, qa QAPair) error
}
