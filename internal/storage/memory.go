package storage

import (
	"bytes"
	"context"
	"sync"

	"github.com/sidharth1507/DNS-Server/pkg/dnswire"
)

// MemoryStore keeps override records in process memory. It is safe for
// concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]map[dnswire.Type][]Record
	closed  bool
}

// NewMemoryStore creates a new in-memory record store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]map[dnswire.Type][]Record),
	}
}

// GetRecords returns all records for a given domain name and record type
func (s *MemoryStore) GetRecords(_ context.Context, name string, recordType dnswire.Type) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStorageClosed
	}

	byType, ok := s.records[normalizeName(name)]
	if !ok {
		return nil, ErrRecordNotFound
	}

	var result []Record
	if recordType == 0 {
		for _, records := range byType {
			result = append(result, records...)
		}
	} else {
		result = append(result, byType[recordType]...)
	}

	if len(result) == 0 {
		return nil, ErrRecordNotFound
	}

	return result, nil
}

// PutRecord stores or updates a record. A record with identical name, type
// and data replaces the existing one; otherwise the record is appended.
func (s *MemoryStore) PutRecord(_ context.Context, record Record) error {
	if err := ValidateRecord(record); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	name := normalizeName(record.Name)
	record.Name = name

	byType, ok := s.records[name]
	if !ok {
		byType = make(map[dnswire.Type][]Record)
		s.records[name] = byType
	}

	existing := byType[record.Type]
	for i, r := range existing {
		if bytes.Equal(r.Data, record.Data) {
			existing[i] = record
			return nil
		}
	}

	byType[record.Type] = append(existing, record)
	return nil
}

// DeleteRecord removes records by name and type
func (s *MemoryStore) DeleteRecord(_ context.Context, name string, recordType dnswire.Type) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	key := normalizeName(name)
	byType, ok := s.records[key]
	if !ok {
		return ErrRecordNotFound
	}

	if recordType == 0 {
		delete(s.records, key)
		return nil
	}

	if _, ok := byType[recordType]; !ok {
		return ErrRecordNotFound
	}

	delete(byType, recordType)
	if len(byType) == 0 {
		delete(s.records, key)
	}

	return nil
}

// ListRecords returns all records in the store
func (s *MemoryStore) ListRecords(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStorageClosed
	}

	var result []Record
	for _, byType := range s.records {
		for _, records := range byType {
			result = append(result, records...)
		}
	}

	return result, nil
}

// Close marks the store closed. Further operations fail with ErrStorageClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.records = nil
	return nil
}
