package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidharth1507/DNS-Server/pkg/dnswire"
)

func newTestRecord(name string, rtype dnswire.Type, data []byte) Record {
	return Record{
		Name:  name,
		Type:  rtype,
		Class: dnswire.CLASS_IN,
		TTL:   300,
		Data:  data,
	}
}

func TestMemoryStorePutAndGet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	record := newTestRecord("example.com", dnswire.TYPE_A, []byte{93, 184, 216, 34})

	require.NoError(t, store.PutRecord(ctx, record))

	got, err := store.GetRecords(ctx, "example.com", dnswire.TYPE_A)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "example.com", got[0].Name)
	assert.Equal(t, dnswire.TYPE_A, got[0].Type)
	assert.Equal(t, []byte{93, 184, 216, 34}, got[0].Data)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, err := store.GetRecords(context.Background(), "missing.example.com", dnswire.TYPE_A)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMemoryStoreNameNormalization(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.PutRecord(ctx, newTestRecord("Example.COM.", dnswire.TYPE_A, []byte{1, 2, 3, 4})))

	got, err := store.GetRecords(ctx, "example.com", dnswire.TYPE_A)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "example.com", got[0].Name)

	got, err = store.GetRecords(ctx, "EXAMPLE.COM.", dnswire.TYPE_A)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMemoryStoreMultipleRecordsSameName(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.PutRecord(ctx, newTestRecord("multi.example.com", dnswire.TYPE_A, []byte{10, 0, 0, 1})))
	require.NoError(t, store.PutRecord(ctx, newTestRecord("multi.example.com", dnswire.TYPE_A, []byte{10, 0, 0, 2})))

	got, err := store.GetRecords(ctx, "multi.example.com", dnswire.TYPE_A)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMemoryStorePutSameDataUpdates(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	record := newTestRecord("ttl.example.com", dnswire.TYPE_A, []byte{10, 0, 0, 1})
	require.NoError(t, store.PutRecord(ctx, record))

	record.TTL = 60
	require.NoError(t, store.PutRecord(ctx, record))

	got, err := store.GetRecords(ctx, "ttl.example.com", dnswire.TYPE_A)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(60), got[0].TTL)
}

func TestMemoryStoreGetAllTypes(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.PutRecord(ctx, newTestRecord("mixed.example.com", dnswire.TYPE_A, []byte{10, 0, 0, 1})))
	require.NoError(t, store.PutRecord(ctx, newTestRecord("mixed.example.com", dnswire.TYPE_TXT, []byte("hello"))))

	got, err := store.GetRecords(ctx, "mixed.example.com", 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.PutRecord(ctx, newTestRecord("del.example.com", dnswire.TYPE_A, []byte{10, 0, 0, 1})))
	require.NoError(t, store.PutRecord(ctx, newTestRecord("del.example.com", dnswire.TYPE_TXT, []byte("x"))))

	require.NoError(t, store.DeleteRecord(ctx, "del.example.com", dnswire.TYPE_A))

	_, err := store.GetRecords(ctx, "del.example.com", dnswire.TYPE_A)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	got, err := store.GetRecords(ctx, "del.example.com", dnswire.TYPE_TXT)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMemoryStoreDeleteAllTypes(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.PutRecord(ctx, newTestRecord("del.example.com", dnswire.TYPE_A, []byte{10, 0, 0, 1})))
	require.NoError(t, store.PutRecord(ctx, newTestRecord("del.example.com", dnswire.TYPE_TXT, []byte("x"))))

	require.NoError(t, store.DeleteRecord(ctx, "del.example.com", 0))

	_, err := store.GetRecords(ctx, "del.example.com", 0)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMemoryStoreDeleteMissing(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	err := store.DeleteRecord(context.Background(), "missing.example.com", dnswire.TYPE_A)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMemoryStoreList(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.PutRecord(ctx, newTestRecord("a.example.com", dnswire.TYPE_A, []byte{10, 0, 0, 1})))
	require.NoError(t, store.PutRecord(ctx, newTestRecord("b.example.com", dnswire.TYPE_A, []byte{10, 0, 0, 2})))

	got, err := store.ListRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMemoryStoreClosed(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Close())

	ctx := context.Background()

	_, err := store.GetRecords(ctx, "example.com", dnswire.TYPE_A)
	assert.ErrorIs(t, err, ErrStorageClosed)

	err = store.PutRecord(ctx, newTestRecord("example.com", dnswire.TYPE_A, []byte{1, 2, 3, 4}))
	assert.ErrorIs(t, err, ErrStorageClosed)

	err = store.DeleteRecord(ctx, "example.com", dnswire.TYPE_A)
	assert.ErrorIs(t, err, ErrStorageClosed)

	_, err = store.ListRecords(ctx)
	assert.ErrorIs(t, err, ErrStorageClosed)
}
