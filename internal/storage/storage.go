// Package storage holds local override records answered ahead of upstream
// forwarding. Record payloads are opaque bytes; nothing here interprets them.
package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/sidharth1507/DNS-Server/pkg/dnswire"
)

var (
	// ErrRecordNotFound is returned when a record is not found
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidRecord is returned when a record is invalid
	ErrInvalidRecord = errors.New("invalid record")
	// ErrInvalidName is returned when a domain name is invalid
	ErrInvalidName = errors.New("invalid domain name")
	// ErrStorageClosed is returned when operating on a closed store
	ErrStorageClosed = errors.New("storage is closed")
)

// Record is a single override record. Data carries the wire payload verbatim.
type Record struct {
	Name  string
	Type  dnswire.Type
	Class dnswire.Class
	TTL   uint32
	Data  []byte
}

// Store defines the interface for override-record backends
type Store interface {
	// GetRecords returns all records for a given domain name and record type.
	// A record type of 0 matches all types.
	GetRecords(ctx context.Context, name string, recordType dnswire.Type) ([]Record, error)

	// PutRecord stores or updates a record
	PutRecord(ctx context.Context, record Record) error

	// DeleteRecord removes records by name and type; type 0 removes all
	// types for the name
	DeleteRecord(ctx context.Context, name string, recordType dnswire.Type) error

	// ListRecords returns all records in the store
	ListRecords(ctx context.Context) ([]Record, error)

	// Close closes the store and cleans up resources
	Close() error
}

// normalizeName lowercases a domain name and strips any trailing dot so
// lookups match regardless of how the name was written.
func normalizeName(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), ".")
}
