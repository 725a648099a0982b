// Package store holds the process-lifetime records of the thumbnail service.
// Records live in plain maps guarded by a single mutex: they are never deleted
// or expired, and the only mutation after creation is the daily usage counter
// increment.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/Cre-XeOnz/XeonzGen/internal/domain/thumbnail"
	"github.com/Cre-XeOnz/XeonzGen/internal/utils/genid"
)

// MemoryStore implements thumbnail.Repository with in-process maps.
type MemoryStore struct {
	mu          sync.RWMutex
	generations map[string]*thumbnail.GenerationRequest
	dailyUsage  map[string]*thumbnail.DailyUsage
}

// NewMemoryStore constructs an empty store. Each instance is independent, so
// tests can create isolated stores.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		generations: make(map[string]*thumbnail.GenerationRequest),
		dailyUsage:  make(map[string]*thumbnail.DailyUsage),
	}
}

// CreateGenerationRequest assigns a fresh id, stamps the creation time and
// stores the record. It always succeeds.
func (s *MemoryStore) CreateGenerationRequest(_ context.Context, req *thumbnail.GenerationRequest) (*thumbnail.GenerationRequest, error) {
	record := *req
	record.ID = genid.New(genid.PrefixThumbnail)
	record.CreatedAt = time.Now().UTC()
	if record.GeneratedImages == nil {
		record.GeneratedImages = []thumbnail.ImageDescriptor{}
	}

	s.mu.Lock()
	s.generations[record.ID] = &record
	s.mu.Unlock()

	out := record
	return &out, nil
}

// GetGenerationRequest returns the record for id or thumbnail.ErrNotFound.
func (s *MemoryStore) GetGenerationRequest(_ context.Context, id string) (*thumbnail.GenerationRequest, error) {
	s.mu.RLock()
	record, ok := s.generations[id]
	s.mu.RUnlock()
	if !ok {
		return nil, thumbnail.ErrNotFound
	}

	out := *record
	return &out, nil
}

// GetDailyUsage returns the usage record for (ipAddress, date) or
// thumbnail.ErrNotFound.
func (s *MemoryStore) GetDailyUsage(_ context.Context, ipAddress, date string) (*thumbnail.DailyUsage, error) {
	s.mu.RLock()
	usage, ok := s.dailyUsage[usageKey(ipAddress, date)]
	s.mu.RUnlock()
	if !ok {
		return nil, thumbnail.ErrNotFound
	}

	out := *usage
	return &out, nil
}

// IncrementDailyUsage creates a record with count 1 on first use of a key and
// increments it afterwards. The read-modify-write happens under the write
// lock, so concurrent calls for the same key never lose updates.
func (s *MemoryStore) IncrementDailyUsage(_ context.Context, ipAddress, date string) (*thumbnail.DailyUsage, error) {
	key := usageKey(ipAddress, date)

	s.mu.Lock()
	usage, ok := s.dailyUsage[key]
	if !ok {
		usage = &thumbnail.DailyUsage{
			ID:        genid.New(genid.PrefixUsage),
			IPAddress: ipAddress,
			Date:      date,
			CreatedAt: time.Now().UTC(),
		}
		s.dailyUsage[key] = usage
	}
	usage.GenerationCount++
	out := *usage
	s.mu.Unlock()

	return &out, nil
}

func usageKey(ipAddress, date string) string {
	return ipAddress + "-" + date
}
