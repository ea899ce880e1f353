package storage

import (
	"context"
	"encoding/hex"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/sidharth1507/DNS-Server/pkg/dnswire"
)

// SurrealDBStore implements Store using SurrealDB as the backend. Record
// payloads are stored as hex strings so the database never needs to
// understand them.
type SurrealDBStore struct {
	db     *surrealdb.DB
	closed bool
}

// SurrealDBConfig holds configuration for a SurrealDB connection
type SurrealDBConfig struct {
	// EndpointURL is the SurrealDB connection URL (ws://... or http://...)
	EndpointURL string
	// Namespace for the SurrealDB instance
	Namespace string
	// Database name within the namespace
	Database string
	// Authentication credentials, optional
	Username string
	Password string
}

// surrealRecord is the row shape stored in SurrealDB
type surrealRecord struct {
	Name       string `json:"name"`
	RecordType int    `json:"record_type"`
	Class      int    `json:"class"`
	TTL        int64  `json:"ttl"`
	Data       string `json:"data"`
}

// NewSurrealDBStore connects to SurrealDB and prepares the record table
func NewSurrealDBStore(ctx context.Context, config *SurrealDBConfig) (*SurrealDBStore, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	if config.Namespace == "" {
		config.Namespace = "dnsrelay"
	}
	if config.Database == "" {
		config.Database = "records"
	}

	db, err := surrealdb.FromEndpointURLString(ctx, config.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}

	if err := db.Use(ctx, config.Namespace, config.Database); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/database: %w", err)
	}

	if config.Username != "" && config.Password != "" {
		auth := surrealdb.Auth{
			Namespace: config.Namespace,
			Database:  config.Database,
			Username:  config.Username,
			Password:  config.Password,
		}

		if _, err := db.SignIn(ctx, auth); err != nil {
			db.Close(ctx)
			return nil, fmt.Errorf("authentication failed: %w", err)
		}
	}

	store := &SurrealDBStore{db: db}

	if err := store.initSchema(ctx); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the record table and its indexes
func (s *SurrealDBStore) initSchema(ctx context.Context) error {
	schemaQueries := []string{
		`DEFINE TABLE IF NOT EXISTS relay_records SCHEMAFULL;`,

		`DEFINE FIELD IF NOT EXISTS name ON relay_records TYPE string;`,
		`DEFINE FIELD IF NOT EXISTS record_type ON relay_records TYPE int;`,
		`DEFINE FIELD IF NOT EXISTS class ON relay_records TYPE int;`,
		`DEFINE FIELD IF NOT EXISTS ttl ON relay_records TYPE int;`,
		`DEFINE FIELD IF NOT EXISTS data ON relay_records TYPE string;`,

		`DEFINE INDEX IF NOT EXISTS name_idx ON relay_records FIELDS name;`,
		`DEFINE INDEX IF NOT EXISTS name_type_data_idx ON relay_records FIELDS name, record_type, data UNIQUE;`,
	}

	for _, query := range schemaQueries {
		if _, err := surrealdb.Query[any](ctx, s.db, query, nil); err != nil {
			return err
		}
	}

	return nil
}

// GetRecords returns all records for a given domain name and record type
func (s *SurrealDBStore) GetRecords(ctx context.Context, name string, recordType dnswire.Type) ([]Record, error) {
	if s.closed {
		return nil, ErrStorageClosed
	}

	if err := ValidateName(name); err != nil {
		return nil, err
	}

	name = normalizeName(name)

	var query string
	vars := map[string]any{
		"name": name,
	}

	if recordType == 0 {
		query = "SELECT * FROM relay_records WHERE name = $name"
	} else {
		query = "SELECT * FROM relay_records WHERE name = $name AND record_type = $record_type"
		vars["record_type"] = int(recordType)
	}

	result, err := surrealdb.Query[[]surrealRecord](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	if len(*result) == 0 || len((*result)[0].Result) == 0 {
		return nil, ErrRecordNotFound
	}

	return convertRows((*result)[0].Result)
}

// PutRecord stores or updates a record
func (s *SurrealDBStore) PutRecord(ctx context.Context, record Record) error {
	if s.closed {
		return ErrStorageClosed
	}

	if err := ValidateRecord(record); err != nil {
		return err
	}

	query := `
		UPSERT relay_records
		SET name = $name,
		    record_type = $record_type,
		    class = $class,
		    ttl = $ttl,
		    data = $data
		WHERE name = $name AND record_type = $record_type AND data = $data
	`

	_, err := surrealdb.Query[any](ctx, s.db, query, map[string]any{
		"name":        normalizeName(record.Name),
		"record_type": int(record.Type),
		"class":       int(record.Class),
		"ttl":         int64(record.TTL),
		"data":        hex.EncodeToString(record.Data),
	})

	if err != nil {
		return fmt.Errorf("failed to store record: %w", err)
	}

	return nil
}

// DeleteRecord removes records by name and type
func (s *SurrealDBStore) DeleteRecord(ctx context.Context, name string, recordType dnswire.Type) error {
	if s.closed {
		return ErrStorageClosed
	}

	if err := ValidateName(name); err != nil {
		return err
	}

	var query string
	vars := map[string]any{
		"name": normalizeName(name),
	}

	if recordType == 0 {
		query = "DELETE FROM relay_records WHERE name = $name"
	} else {
		query = "DELETE FROM relay_records WHERE name = $name AND record_type = $record_type"
		vars["record_type"] = int(recordType)
	}

	_, err := surrealdb.Query[any](ctx, s.db, query, vars)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	return nil
}

// ListRecords returns all records in the store
func (s *SurrealDBStore) ListRecords(ctx context.Context) ([]Record, error) {
	if s.closed {
		return nil, ErrStorageClosed
	}

	query := "SELECT * FROM relay_records ORDER BY name, record_type"

	result, err := surrealdb.Query[[]surrealRecord](ctx, s.db, query, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	if len(*result) == 0 {
		return nil, nil
	}

	return convertRows((*result)[0].Result)
}

// Close closes the database connection
func (s *SurrealDBStore) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close(context.Background())
}

func convertRows(rows []surrealRecord) ([]Record, error) {
	result := make([]Record, 0, len(rows))
	for _, row := range rows {
		data, err := hex.DecodeString(row.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: bad data for %q: %v", ErrInvalidRecord, row.Name, err)
		}

		result = append(result, Record{
			Name:  row.Name,
			Type:  dnswire.Type(row.RecordType),
			Class: dnswire.Class(row.Class),
			TTL:   uint32(row.TTL),
			Data:  data,
		})
	}

	return result, nil
}
