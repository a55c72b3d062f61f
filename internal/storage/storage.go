package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eugenenazirov/freight-optimizer/internal/optimizer"
)

// DefaultCapacity is the number of records kept when no capacity is configured.
const DefaultCapacity = 100

var (
	// ErrNotFound is returned when no record exists for the requested ID.
	ErrNotFound = errors.New("optimization record not found")
	// ErrInvalidRecord indicates the record is missing its cargo dimensions.
	ErrInvalidRecord = errors.New("record must carry positive volume and weight")
)

// Record is a single optimization served to a client.
type Record struct {
	ID        string           `json:"id"`
	VolumeCBM decimal.Decimal  `json:"volumeCbm"`
	WeightKg  decimal.Decimal  `json:"weightKg"`
	Result    optimizer.Result `json:"result"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Storage keeps the recent optimization history.
type Storage interface {
	Save(rec Record) (Record, error)
	Get(id string) (Record, error)
	List(limit int) ([]Record, error)
}

// MemoryStorage keeps a bounded history in memory and guards access with a RWMutex.
// Once full, saving a record evicts the oldest one.
type MemoryStorage struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	records  map[string]Record
}

// NewMemoryStorage creates a history holding at most capacity records.
// A non-positive capacity falls back to DefaultCapacity.
func NewMemoryStorage(capacity int) *MemoryStorage {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStorage{
		capacity: capacity,
		order:    make([]string, 0, capacity),
		records:  make(map[string]Record, capacity),
	}
}

// Save assigns a new ID to rec and stores it.
func (s *MemoryStorage) Save(rec Record) (Record, error) {
	if !rec.VolumeCBM.IsPositive() || !rec.WeightKg.IsPositive() {
		return Record{}, ErrInvalidRecord
	}
	rec.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) == s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.records, oldest)
	}
	s.order = append(s.order, rec.ID)
	s.records[rec.ID] = rec

	return rec, nil
}

// Get returns the record stored under id.
func (s *MemoryStorage) Get(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns up to limit records, newest first. A non-positive limit returns
// the whole history.
func (s *MemoryStorage) List(limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}

	out := make([]Record, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[s.order[i]])
	}
	return out, nil
}

// Capacity reports the maximum number of records kept.
func (s *MemoryStorage) Capacity() int {
	return s.capacity
}
