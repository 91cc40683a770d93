package fares

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestDistanceTable(t *testing.T) *DistanceTable {
	t.Helper()

	table, err := NewDistanceTable(filepath.Join("testdata", "distances.csv"))
	require.NoError(t, err)

	return table
}

func TestDistanceTableLookup(t *testing.T) {
	table := loadTestDistanceTable(t)

	distance, found := table.Distance("Central", "Chatswood")
	assert.True(t, found)
	assert.Equal(t, 12.46, distance)

	_, found = table.Distance("Central", "Narnia")
	assert.False(t, found)
}

func TestDistanceTableSymmetric(t *testing.T) {
	table := loadTestDistanceTable(t)

	forward, foundForward := table.Distance("Central", "Parramatta")
	reverse, foundReverse := table.Distance("Parramatta", "Central")

	assert.True(t, foundForward)
	assert.True(t, foundReverse)
	assert.Equal(t, forward, reverse)
}

func TestPairKeyOrdersNames(t *testing.T) {
	assert.Equal(t, PairKey("Central", "Chatswood"), PairKey("Chatswood", "Central"))
	assert.Equal(t, "Central->Chatswood", PairKey("Chatswood", "Central"))
}

func TestDistancesFrom(t *testing.T) {
	table := loadTestDistanceTable(t)

	matches := table.DistancesFrom("Town Hall")

	assert.Equal(t, map[string]float64{
		"Central": 1.16,
		"Wynyard": 0.93,
	}, matches)
}

func TestDistanceTableCount(t *testing.T) {
	table := loadTestDistanceTable(t)

	assert.Equal(t, 12, table.Count())
}

func TestDistanceTableMissingFile(t *testing.T) {
	_, err := NewDistanceTable(filepath.Join("testdata", "nonexistent.csv"))
	assert.Error(t, err)
}
