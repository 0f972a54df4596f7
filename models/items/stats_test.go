package items

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	serverErrors "go-catalog/errors"
	"go-catalog/objects"
	"go-catalog/storage"
)

// countingStore is the read-count probe: it satisfies Store while recording
// how often the collection is actually read.
type countingStore struct {
	items     []objects.Item
	modTime   time.Time
	listCalls int
}

func (s *countingStore) List() ([]objects.Item, error) {
	s.listCalls++
	return s.items, nil
}

func (s *countingStore) GetByID(id int) (objects.Item, error) {

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}

	return objects.Item{}, serverErrors.ItemNotFoundError.New(id)
}

func (s *countingStore) Append(item objects.Item) (objects.Item, error) {

	item.ID = len(s.items) + 1
	s.items = append(s.items, item)
	s.modTime = s.modTime.Add(time.Second)

	return item, nil
}

func (s *countingStore) ModTime() (time.Time, error) {
	return s.modTime, nil
}

func TestStatsComputesAggregate(t *testing.T) {

	store := &countingStore{
		items: []objects.Item{
			{ID: 1, Name: "A", Category: "c", Price: 10},
			{ID: 2, Name: "B", Category: "c", Price: 20},
		},
		modTime: time.Now(),
	}

	cache := NewStatsCache(store)

	stats, err := cache.Stats()
	require.NoError(t, err)
	require.Equal(t, objects.Stats{Count: 2, AveragePrice: 15}, stats)
}

func TestStatsCachedWhileFileUnchanged(t *testing.T) {

	store := &countingStore{
		items:   []objects.Item{{ID: 1, Name: "A", Category: "c", Price: 10}},
		modTime: time.Now(),
	}

	cache := NewStatsCache(store)

	_, err := cache.Stats()
	require.NoError(t, err)
	require.Equal(t, 1, store.listCalls)

	_, err = cache.Stats()
	require.NoError(t, err)
	require.Equal(t, 1, store.listCalls, "unchanged mod time must not re-read storage")
}

func TestStatsRecomputedWhenFileChanges(t *testing.T) {

	store := &countingStore{
		items: []objects.Item{
			{ID: 1, Name: "A", Category: "c", Price: 10},
			{ID: 2, Name: "B", Category: "c", Price: 20},
		},
		modTime: time.Now(),
	}

	cache := NewStatsCache(store)

	stats, err := cache.Stats()
	require.NoError(t, err)
	require.Equal(t, objects.Stats{Count: 2, AveragePrice: 15}, stats)

	_, err = store.Append(objects.Item{Name: "C", Category: "c", Price: 30})
	require.NoError(t, err)

	stats, err = cache.Stats()
	require.NoError(t, err)
	require.Equal(t, objects.Stats{Count: 3, AveragePrice: 20}, stats)
	require.Equal(t, 2, store.listCalls)
}

func TestStatsEmptyCollection(t *testing.T) {

	store := &countingStore{modTime: time.Now()}
	cache := NewStatsCache(store)

	stats, err := cache.Stats()
	require.NoError(t, err)
	require.Equal(t, objects.Stats{Count: 0, AveragePrice: 0}, stats, "average of zero items is 0, not NaN")
}

func TestStatsOverFileStore(t *testing.T) {

	store := storage.NewFileStore(filepath.Join(t.TempDir(), "items.json"))

	_, err := store.Append(objects.Item{Name: "A", Category: "c", Price: 10})
	require.NoError(t, err)
	_, err = store.Append(objects.Item{Name: "B", Category: "c", Price: 20})
	require.NoError(t, err)

	cache := NewStatsCache(store)

	stats, err := cache.Stats()
	require.NoError(t, err)
	require.Equal(t, objects.Stats{Count: 2, AveragePrice: 15}, stats)

	_, err = store.Append(objects.Item{Name: "C", Category: "c", Price: 30})
	require.NoError(t, err)

	// Filesystem timestamps can be coarse; force the mod time forward so
	// the append is observable.
	modTime, err := store.ModTime()
	require.NoError(t, err)
	next := modTime.Add(2 * time.Second)
	require.NoError(t, os.Chtimes(store.Path(), next, next))

	stats, err = cache.Stats()
	require.NoError(t, err)
	require.Equal(t, objects.Stats{Count: 3, AveragePrice: 20}, stats)
}

func TestStatsStorageFailure(t *testing.T) {

	store := storage.NewFileStore(filepath.Join(t.TempDir(), "items.json"))
	cache := NewStatsCache(store)

	_, err := cache.Stats()

	asserted, ok := serverErrors.TryAssertError(err)
	require.True(t, ok)
	require.Equal(t, serverErrors.StorageUnavailableErrorCode, asserted.Code)
}
