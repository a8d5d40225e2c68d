// Package store holds the in-memory working set of canonical records and the
// query filtering applied to it.
package store

import "github.com/aprofam/servqual-go/pkg/servqual/models"

// Store keeps canonical records keyed by id, with display order maintained
// separately. It has no locking: the working set is owned by a single
// synchronous caller.
type Store struct {
	byID  map[string]models.CanonicalRecord
	order []string
}

// New returns an empty store.
func New() *Store {
	return &Store{byID: make(map[string]models.CanonicalRecord)}
}

// Seed bulk-inserts imported records, preserving their input order. It fails
// with DuplicateIDError on the first colliding id, leaving earlier inserts in
// place.
func (s *Store) Seed(records []models.CanonicalRecord) error {
	for _, r := range records {
		if _, ok := s.byID[r.ID]; ok {
			return &DuplicateIDError{ID: r.ID}
		}
		r.ProgressPercent = models.ClampProgress(r.ProgressPercent)
		s.byID[r.ID] = r
		s.order = append(s.order, r.ID)
	}
	return nil
}

// Add inserts a record at the head of display order, most-recent-first. It
// fails with DuplicateIDError when the id is already present; callers must
// guarantee fresh ids for manual adds.
func (s *Store) Add(r models.CanonicalRecord) error {
	if _, ok := s.byID[r.ID]; ok {
		return &DuplicateIDError{ID: r.ID}
	}
	r.ProgressPercent = models.ClampProgress(r.ProgressPercent)
	s.byID[r.ID] = r
	s.order = append([]string{r.ID}, s.order...)
	return nil
}

// Update replaces the record stored under id with the given record, keeping
// its position in display order. The replacement's progress is re-clamped and
// its id is forced to the keyed id. Fails with NotFoundError when the id is
// absent.
func (s *Store) Update(id string, r models.CanonicalRecord) error {
	if _, ok := s.byID[id]; !ok {
		return &NotFoundError{ID: id}
	}
	r.ID = id
	r.ProgressPercent = models.ClampProgress(r.ProgressPercent)
	s.byID[id] = r
	return nil
}

// Remove deletes the record under id. Fails with NotFoundError when absent;
// the store is left unchanged in that case. Deletion is immediate and final.
func (s *Store) Remove(id string) error {
	if _, ok := s.byID[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the record under id, if present.
func (s *Store) Get(id string) (models.CanonicalRecord, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// All returns the records in display order. The slice is rebuilt per call;
// mutating the returned records does not affect the store.
func (s *Store) All() []models.CanonicalRecord {
	records := make([]models.CanonicalRecord, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.byID[id])
	}
	return records
}

// Len reports the number of records in the store.
func (s *Store) Len() int {
	return len(s.byID)
}
