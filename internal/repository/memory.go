package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/haeunpark/studyplan/internal/domain"
)

// MemoryStore is the browser-local-storage analogue: everything lives in
// process memory and vanishes on exit. It implements MaterialRepo,
// CompletionRepo and SettingsRepo behind the same interfaces as SQLite,
// so the two backends are interchangeable at wiring time.
type MemoryStore struct {
	mu          sync.RWMutex
	materials   map[string]*domain.Material
	completions map[string]bool
	settings    *domain.ReminderSettings
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		materials:   make(map[string]*domain.Material),
		completions: make(map[string]bool),
	}
}

func (s *MemoryStore) Create(ctx context.Context, m *domain.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials[m.ID] = cloneMaterial(m)
	return nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*domain.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.materials[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneMaterial(m), nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*domain.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	materials := make([]*domain.Material, 0, len(s.materials))
	for _, m := range s.materials {
		materials = append(materials, cloneMaterial(m))
	}
	sort.Slice(materials, func(i, j int) bool {
		if !materials[i].CreatedAt.Equal(materials[j].CreatedAt) {
			return materials[i].CreatedAt.Before(materials[j].CreatedAt)
		}
		return materials[i].ID < materials[j].ID
	})
	return materials, nil
}

func (s *MemoryStore) Update(ctx context.Context, m *domain.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.materials[m.ID]; !ok {
		return ErrNotFound
	}
	s.materials[m.ID] = cloneMaterial(m)
	return nil
}

func (s *MemoryStore) UpdateProgress(ctx context.Context, id string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.materials[id]
	if !ok {
		return ErrNotFound
	}
	switch m.Type {
	case domain.MaterialBook:
		m.CurrentPage = value
	case domain.MaterialVideo:
		m.CurrentProgress = value
	}
	m.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.materials[id]; !ok {
		return ErrNotFound
	}
	delete(s.materials, id)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials = make(map[string]*domain.Material)
	return nil
}

func (s *MemoryStore) MarkCompleted(ctx context.Context, materialID string, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completions[CompletionKey(materialID, date)] = true
	return nil
}

func (s *MemoryStore) MarkIncomplete(ctx context.Context, materialID string, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.completions, CompletionKey(materialID, date))
	return nil
}

func (s *MemoryStore) IsCompleted(ctx context.Context, materialID string, date time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completions[CompletionKey(materialID, date)], nil
}

func (s *MemoryStore) ListAll(ctx context.Context) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make(map[string]bool, len(s.completions))
	for k := range s.completions {
		keys[k] = true
	}
	return keys, nil
}

func (s *MemoryStore) Get(ctx context.Context) (*domain.ReminderSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return &domain.ReminderSettings{Time: "09:00"}, nil
	}
	out := *s.settings
	out.Weekdays = append([]int(nil), s.settings.Weekdays...)
	return &out, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, settings *domain.ReminderSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *settings
	saved.Weekdays = append([]int(nil), settings.Weekdays...)
	s.settings = &saved
	return nil
}

// cloneMaterial deep-copies a material so callers never share section
// slices with the store.
func cloneMaterial(m *domain.Material) *domain.Material {
	out := *m
	out.Sections = append([]domain.Section(nil), m.Sections...)
	return &out
}

var (
	_ MaterialRepo   = (*MemoryStore)(nil)
	_ CompletionRepo = (*MemoryStore)(nil)
	_ SettingsRepo   = (*MemoryStore)(nil)
)

// Interface checks for the SQLite implementations live here alongside the
// memory ones to keep the backend parity visible in one place.
var (
	_ MaterialRepo   = (*SQLiteMaterialRepo)(nil)
	_ CompletionRepo = (*SQLiteCompletionRepo)(nil)
	_ SettingsRepo   = (*SQLiteSettingsRepo)(nil)
)
