package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func TestLoadAll_AbsentFile(t *testing.T) {
	col := NewCollection[record](t.TempDir(), "things")

	records := col.LoadAll()

	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSaveAll_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	col := NewCollection[record](dir, "things")

	want := []record{{ID: "a", Value: 1}, {ID: "b", Value: 2}}
	require.NoError(t, col.SaveAll(want))

	got := col.LoadAll()
	assert.Equal(t, want, got)

	// File is pretty-printed
	data, err := os.ReadFile(filepath.Join(dir, "things.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")
}

func TestLoadAll_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "things.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	col := NewCollection[record](dir, "things")

	records := col.LoadAll()
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestUpdate_AppliesChanges(t *testing.T) {
	col := NewCollection[record](t.TempDir(), "things")
	require.NoError(t, col.SaveAll([]record{{ID: "a", Value: 1}}))

	err := col.Update(func(records []record) ([]record, error) {
		records[0].Value = 42
		return append(records, record{ID: "b", Value: 2}), nil
	})
	require.NoError(t, err)

	got := col.LoadAll()
	require.Len(t, got, 2)
	assert.Equal(t, 42, got[0].Value)
	assert.Equal(t, "b", got[1].ID)
}

func TestUpdate_AbortsWithoutSaving(t *testing.T) {
	col := NewCollection[record](t.TempDir(), "things")
	require.NoError(t, col.SaveAll([]record{{ID: "a", Value: 1}}))

	boom := errors.New("boom")
	err := col.Update(func(records []record) ([]record, error) {
		records[0].Value = 99
		return records, boom
	})
	require.ErrorIs(t, err, boom)

	got := col.LoadAll()
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Value, "failed update must not be persisted")
}

func TestSaveAll_NilBecomesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	col := NewCollection[record](dir, "things")

	require.NoError(t, col.SaveAll(nil))

	data, err := os.ReadFile(filepath.Join(dir, "things.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
