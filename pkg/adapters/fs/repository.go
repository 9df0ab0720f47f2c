// Package fs persists the business snapshot as a single file on disk.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/parlorhq/parlor/pkg/core"
)

// Config holds the configuration for the filesystem repository.
type Config struct {
	// Path is the snapshot file (e.g. "pizza_data.json"). The extension
	// selects the serializer; JSON is the default.
	Path string

	// AutoInit creates the parent directory when missing.
	AutoInit bool

	// MustExist requires the parent directory to already exist.
	MustExist bool

	// Strict rejects snapshots with missing required sections instead of
	// repairing them to empty defaults.
	Strict bool

	Logger *slog.Logger
}

// Repository implements core.SnapshotRepository on top of a single data file,
// written atomically on every save.
type Repository struct {
	config     Config
	serializer Serializer
	logger     *slog.Logger
}

// NewRepository creates a new filesystem-backed snapshot repository.
func NewRepository(config Config) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		config:     config,
		serializer: SerializerFor(filepath.Ext(config.Path)),
		logger:     logger,
	}
}

// Initialize ensures the directory holding the snapshot file is usable.
func (r *Repository) Initialize(ctx context.Context) error {
	dir := filepath.Dir(r.config.Path)

	if r.config.MustExist {
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("data directory does not exist: %s", dir)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("data path is not a directory: %s", dir)
		}
		return nil
	}

	if r.config.AutoInit {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return nil
}

// Load reads and decodes the snapshot file. A missing file is reported as
// core.ErrSnapshotNotFound so the caller can seed defaults. A present but
// structurally incomplete file is repaired (or rejected under Strict); the
// process never runs on a partially-shaped store.
func (r *Repository) Load(ctx context.Context) (*core.Snapshot, error) {
	data, err := os.ReadFile(r.config.Path)
	if os.IsNotExist(err) {
		return nil, core.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	snap, err := r.serializer.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedSnapshot, err)
	}

	missing := missingSections(snap)
	if len(missing) > 0 {
		if r.config.Strict {
			return nil, fmt.Errorf("%w: missing sections %v", core.ErrMalformedSnapshot, missing)
		}
		r.logger.Warn("repairing snapshot", "missing", missing)
		repair(snap)
	}
	return snap, nil
}

// Save encodes the snapshot and writes it atomically.
func (r *Repository) Save(ctx context.Context, snap *core.Snapshot) error {
	data, err := r.serializer.Encode(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := writeFileAtomic(r.config.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	r.logger.Debug("snapshot saved", "path", r.config.Path, "bytes", len(data))
	return nil
}

// missingSections reports which required snapshot sections are absent.
// Decoding leaves absent sequences nil, which is how absence is detected;
// present-but-empty sections decode to empty non-nil values.
func missingSections(snap *core.Snapshot) []string {
	var missing []string
	check := func(name string, absent bool) {
		if absent {
			missing = append(missing, name)
		}
	}

	check("restaurant_info.hours", snap.RestaurantInfo.Hours == nil)
	check("menu.pizzas", snap.Menu.Pizzas == nil)
	check("menu.sides", snap.Menu.Sides == nil)
	check("menu.drinks", snap.Menu.Drinks == nil)
	check("delivery_zones", snap.DeliveryZones == nil)
	check("promotions", snap.Promotions == nil)
	check("orders", snap.Orders == nil)
	check("questions", snap.Questions == nil)
	check("customer_feedback", snap.Feedback == nil)
	check("analytics.popular_items", snap.Analytics.PopularItems == nil)
	check("staff_notes", snap.StaffNotes == nil)
	return missing
}

// repair fills absent sections with their empty defaults, in place.
func repair(snap *core.Snapshot) {
	def := core.DefaultSnapshot()

	if snap.RestaurantInfo.Hours == nil {
		snap.RestaurantInfo.Hours = def.RestaurantInfo.Hours
	}
	if snap.RestaurantInfo.Name == "" {
		snap.RestaurantInfo.Name = def.RestaurantInfo.Name
	}
	if snap.RestaurantInfo.Phone == "" {
		snap.RestaurantInfo.Phone = def.RestaurantInfo.Phone
	}
	if snap.Menu.Pizzas == nil {
		snap.Menu.Pizzas = def.Menu.Pizzas
	}
	if snap.Menu.Sides == nil {
		snap.Menu.Sides = def.Menu.Sides
	}
	if snap.Menu.Drinks == nil {
		snap.Menu.Drinks = def.Menu.Drinks
	}
	if snap.DeliveryZones == nil {
		snap.DeliveryZones = def.DeliveryZones
	}
	if snap.Promotions == nil {
		snap.Promotions = def.Promotions
	}
	if snap.Orders == nil {
		snap.Orders = def.Orders
	}
	if snap.Questions == nil {
		snap.Questions = def.Questions
	}
	if snap.Feedback == nil {
		snap.Feedback = def.Feedback
	}
	if snap.Analytics.PopularItems == nil {
		snap.Analytics.PopularItems = def.Analytics.PopularItems
	}
	if snap.Analytics.PeakHours == nil {
		snap.Analytics.PeakHours = def.Analytics.PeakHours
	}
	if snap.Analytics.BusiestDays == nil {
		snap.Analytics.BusiestDays = def.Analytics.BusiestDays
	}
	if snap.StaffNotes == nil {
		snap.StaffNotes = def.StaffNotes
	}
}
