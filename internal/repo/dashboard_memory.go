package repo

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/lucasvieira94/nola-god-level/internal/models"
)

type InMemoryDashboardRepository struct {
	mu         sync.Mutex
	dashboards map[int]models.Dashboard
	nextID     int
}

func NewInMemoryDashboardRepository() *InMemoryDashboardRepository {
	return &InMemoryDashboardRepository{dashboards: make(map[int]models.Dashboard), nextID: 1}
}

func (r *InMemoryDashboardRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dashboards = make(map[int]models.Dashboard)
	r.nextID = 1
}

func (r *InMemoryDashboardRepository) ForOwner(ownerID int) DashboardStore {
	return &memoryDashboardStore{repo: r, ownerID: ownerID}
}

type memoryDashboardStore struct {
	repo    *InMemoryDashboardRepository
	ownerID int
}

func (s *memoryDashboardStore) nameTaken(name string, excludeID int) bool {
	for _, d := range s.repo.dashboards {
		if d.OwnerID == s.ownerID && d.Name == name && d.ID != excludeID {
			return true
		}
	}
	return false
}

func (s *memoryDashboardStore) Create(_ context.Context, name string, layout json.RawMessage) (models.Dashboard, error) {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	if s.nameTaken(name, 0) {
		return models.Dashboard{}, ErrDuplicateDashboardName
	}

	now := time.Now().UTC()
	d := models.Dashboard{
		ID:        s.repo.nextID,
		OwnerID:   s.ownerID,
		Name:      name,
		Layout:    layout,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.repo.nextID++
	s.repo.dashboards[d.ID] = d
	return d, nil
}

func (s *memoryDashboardStore) List(_ context.Context) ([]models.Dashboard, error) {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	dashboards := []models.Dashboard{}
	for _, d := range s.repo.dashboards {
		if d.OwnerID == s.ownerID {
			dashboards = append(dashboards, d)
		}
	}
	sort.Slice(dashboards, func(i, j int) bool {
		return dashboards[i].UpdatedAt.After(dashboards[j].UpdatedAt)
	})
	return dashboards, nil
}

func (s *memoryDashboardStore) GetByID(_ context.Context, id int) (models.Dashboard, error) {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	d, ok := s.repo.dashboards[id]
	if !ok || d.OwnerID != s.ownerID {
		return models.Dashboard{}, ErrDashboardNotFound
	}
	return d, nil
}

func (s *memoryDashboardStore) Update(_ context.Context, id int, name string, layout json.RawMessage) (models.Dashboard, error) {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	d, ok := s.repo.dashboards[id]
	if !ok || d.OwnerID != s.ownerID {
		return models.Dashboard{}, ErrDashboardNotFound
	}
	if s.nameTaken(name, id) {
		return models.Dashboard{}, ErrDuplicateDashboardName
	}

	d.Name = name
	d.Layout = layout
	d.UpdatedAt = time.Now().UTC()
	s.repo.dashboards[id] = d
	return d, nil
}

func (s *memoryDashboardStore) Delete(_ context.Context, id int) error {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	d, ok := s.repo.dashboards[id]
	if !ok || d.OwnerID != s.ownerID {
		return ErrDashboardNotFound
	}
	delete(s.repo.dashboards, d.ID)
	return nil
}
