// ABOUTME: Project-scoped attribution persistence with merge-by-id semantics
// ABOUTME: Stores one JSON array of records per project metadata entry

package attribution

import (
	"encoding/json"

	"svg-icon-library/core/domain"
	"svg-icon-library/core/interfaces"
)

const (
	// Namespace is the project metadata namespace owned by the library.
	Namespace = "svg_library"

	// MetadataKey is the entry holding the serialized attribution array.
	MetadataKey = "svg_library_attributions"
)

// ProjectStore persists attribution records into the host project's metadata
// store. Records are merged by icon id: a record whose id already exists in
// the stored array is never duplicated.
type ProjectStore struct {
	store  interfaces.MetadataStore
	logger interfaces.Logger
}

// NewProjectStore creates a project store over the given metadata port.
func NewProjectStore(store interfaces.MetadataStore, logger interfaces.Logger) *ProjectStore {
	return &ProjectStore{store: store, logger: logger}
}

// Load reads the persisted attribution array. A missing or unparseable entry
// loads as an empty list; corruption is logged, not propagated.
func (s *ProjectStore) Load() ([]domain.AttributionRecord, error) {
	raw, exists, err := s.store.ReadEntry(Namespace, MetadataKey)
	if err != nil {
		return nil, err
	}
	if !exists || raw == "" {
		return []domain.AttributionRecord{}, nil
	}

	var records []domain.AttributionRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		if s.logger != nil {
			s.logger.Warn("stored attributions are unparseable, starting fresh", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return []domain.AttributionRecord{}, nil
	}

	return records, nil
}

// Save merges records into the persisted array, skipping ids already present,
// and writes the whole array back. It returns the number of newly added
// records.
func (s *ProjectStore) Save(records []domain.AttributionRecord) (int, error) {
	existing, err := s.Load()
	if err != nil {
		return 0, err
	}

	existingIDs := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		existingIDs[rec.IconID] = struct{}{}
	}

	added := 0
	for _, rec := range records {
		if _, dup := existingIDs[rec.IconID]; dup {
			continue
		}
		existing = append(existing, rec)
		existingIDs[rec.IconID] = struct{}{}
		added++
	}

	data, err := json.Marshal(existing)
	if err != nil {
		return 0, err
	}

	if err := s.store.WriteEntry(Namespace, MetadataKey, string(data)); err != nil {
		return 0, err
	}

	return added, nil
}

// Add merges a single record into the persisted array.
func (s *ProjectStore) Add(record domain.AttributionRecord) error {
	_, err := s.Save([]domain.AttributionRecord{record})
	return err
}

// Clear removes the attribution entry from project metadata.
func (s *ProjectStore) Clear() error {
	return s.store.RemoveEntry(Namespace, MetadataKey)
}

// Export loads the persisted records and serializes them in the requested
// format through a throwaway ledger.
func (s *ProjectStore) Export(format string) (string, error) {
	records, err := s.Load()
	if err != nil {
		return "", err
	}

	ledger := NewLedger()
	for _, rec := range records {
		ledger.Add(rec)
	}
	return ledger.Export(format)
}
