// Package directory owns the in-memory business directory for one session.
//
// A Store holds the ordered record list (newest first) and the active
// category filter. It is the only place business rules are enforced:
// presentation code reads through ListVisible and mutates through
// AddBusiness, DeleteBusiness and SetFilter.
//
// A Store is not safe for concurrent use. Every front end drives it from a
// single goroutine.
package directory

import (
	"fmt"

	"github.com/jacksmith/bizdir/internal/model"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"
)

// Store is the authoritative directory state for a session.
type Store struct {
	records []model.Business // newest first
	filter  model.Filter
	nextID  int
	logger  *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Store seeded with records, in the given order.
// Seed records with ID 0 are assigned fresh IDs in order. Duplicate IDs,
// negative IDs, and records that fail payload validation are rejected
// with an error wrapping ErrInvalidInput.
func New(seed []model.Business, opts ...Option) (*Store, error) {
	s := &Store{
		filter: model.FilterAll,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.nextID = model.MaxID(seed) + 1
	seen := make(map[int]bool, len(seed))
	s.records = make([]model.Business, 0, len(seed))

	for i := range seed {
		b := seed[i]
		if b.ID < 0 {
			return nil, fmt.Errorf("%w: seed business %q has negative ID %d", ErrInvalidInput, b.Name, b.ID)
		}
		if b.ID == 0 {
			b.ID = s.nextID
			s.nextID++
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("%w: duplicate seed ID %d", ErrInvalidInput, b.ID)
		}
		seen[b.ID] = true

		in := b.Input()
		if err := validateInput(&in); err != nil {
			return nil, fmt.Errorf("seed business %s: %w", model.FormatID(b.ID), err)
		}
		b.Phone = model.NormalizeOptional(b.Phone)
		b.Website = model.NormalizeOptional(b.Website)
		s.records = append(s.records, b)
	}

	s.logger.Debug("directory seeded",
		zap.Int("records", len(s.records)),
		zap.Int("next_id", s.nextID))

	return s, nil
}

// AddBusiness validates in, assigns it a fresh ID and prepends it.
// Blank optional fields are stored as absent. On error the store is unchanged.
func (s *Store) AddBusiness(in model.BusinessInput) (model.Business, error) {
	if err := validateInput(&in); err != nil {
		s.logger.Info("business rejected", zap.Error(err))
		return model.Business{}, err
	}

	b := model.Business{
		ID:          s.nextID,
		Name:        in.Name,
		Category:    in.Category,
		Location:    in.Location,
		Description: in.Description,
		Phone:       model.NormalizeOptional(in.Phone),
		Website:     model.NormalizeOptional(in.Website),
	}
	s.nextID++

	records := make([]model.Business, 0, len(s.records)+1)
	records = append(records, b)
	s.records = append(records, s.records...)

	s.logger.Debug("business added",
		zap.Int("id", b.ID),
		zap.String("name", b.Name),
		zap.String("category", string(b.Category)))

	return b, nil
}

// DeleteBusiness removes the business with the given ID.
// Deleting an unknown or already-deleted ID is a no-op; the result reports
// whether a record was removed.
func (s *Store) DeleteBusiness(id int) bool {
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		name := s.records[i].Name
		s.records = append(s.records[:i:i], s.records[i+1:]...)
		s.logger.Debug("business deleted", zap.Int("id", id), zap.String("name", name))
		return true
	}
	s.logger.Debug("delete ignored, no such business", zap.Int("id", id))
	return false
}

// SetFilter replaces the active filter. A value that is neither
// model.FilterAll nor a category returns ErrInvalidArgument and leaves the
// filter unchanged.
func (s *Store) SetFilter(f model.Filter) error {
	if !f.Valid() {
		return fmt.Errorf("%w: filter %q is not all or a category", ErrInvalidArgument, string(f))
	}
	s.filter = f
	s.logger.Debug("filter changed", zap.String("filter", string(f)))
	return nil
}

// Filter returns the active filter.
func (s *Store) Filter() model.Filter {
	return s.filter
}

// ListVisible returns the records matching the active filter, newest first.
// The result is a copy and is empty, not nil, when nothing matches.
func (s *Store) ListVisible() []model.Business {
	visible := make([]model.Business, 0, len(s.records))
	for i := range s.records {
		if s.filter.Matches(&s.records[i]) {
			visible = append(visible, s.records[i])
		}
	}
	return visible
}

// All returns every record regardless of the filter, newest first.
func (s *Store) All() []model.Business {
	all := make([]model.Business, len(s.records))
	copy(all, s.records)
	return all
}

// Get returns the business with the given ID.
func (s *Store) Get(id int) (model.Business, bool) {
	for i := range s.records {
		if s.records[i].ID == id {
			return s.records[i], true
		}
	}
	return model.Business{}, false
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Counts returns the number of records in each category.
// Every category is present, with zero when it has no records.
func (s *Store) Counts() map[model.Category]int {
	counts := make(map[model.Category]int, len(model.Categories()))
	for _, c := range model.Categories() {
		counts[c] = 0
	}
	for i := range s.records {
		counts[s.records[i].Category]++
	}
	return counts
}

// Search fuzzy-matches query against the names of the visible records,
// best match first. An empty query returns ListVisible.
func (s *Store) Search(query string) []model.Business {
	visible := s.ListVisible()
	if query == "" {
		return visible
	}

	names := make([]string, len(visible))
	for i := range visible {
		names[i] = visible[i].Name
	}

	matches := fuzzy.Find(query, names)
	results := make([]model.Business, 0, len(matches))
	for _, m := range matches {
		results = append(results, visible[m.Index])
	}
	return results
}
