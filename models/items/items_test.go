package items

import (
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	serverErrors "go-catalog/errors"
	"go-catalog/models"
	"go-catalog/objects"
	"go-catalog/storage"
)

func newTestModel(t *testing.T) *ItemsModel {
	t.Helper()
	return NewItemsModel(storage.NewFileStore(filepath.Join(t.TempDir(), "items.json")))
}

func fakeCandidate() objects.ItemCandidate {

	price := gofakeit.Price(1, 500)

	return objects.ItemCandidate{
		Name:     gofakeit.ProductName(),
		Category: gofakeit.ProductCategory(),
		Price:    &price,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func requireErrorCode(t *testing.T, err error, code int) {
	t.Helper()

	asserted, ok := serverErrors.TryAssertError(err)
	require.True(t, ok, "expected a coded error, got %v", err)
	require.Equal(t, code, asserted.Code)
}

func TestInsertAssignsUniqueIDs(t *testing.T) {

	model := newTestModel(t)

	seen := map[int]bool{}
	for i := 0; i < 5; i++ {

		item, err := model.Insert(fakeCandidate())
		require.NoError(t, err)
		require.False(t, seen[item.ID], "ID %d assigned twice", item.ID)
		seen[item.ID] = true

		stored, err := model.GetByID(item.ID)
		require.NoError(t, err)
		require.Equal(t, item, stored)
	}
}

func TestInsertValidation(t *testing.T) {

	model := newTestModel(t)

	for name, candidate := range map[string]objects.ItemCandidate{
		"missing name":     {Category: "Tools", Price: floatPtr(9.99)},
		"blank name":       {Name: "   ", Category: "Tools", Price: floatPtr(9.99)},
		"missing category": {Name: "Widget", Price: floatPtr(9.99)},
		"missing price":    {Name: "Widget", Category: "Tools"},
		"negative price":   {Name: "Widget", Category: "Tools", Price: floatPtr(-1)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := model.Insert(candidate)
			requireErrorCode(t, err, serverErrors.ValidationErrorCode)
		})
	}
}

func TestInsertAcceptsZeroPrice(t *testing.T) {

	model := newTestModel(t)

	item, err := model.Insert(objects.ItemCandidate{Name: "Freebie", Category: "Promo", Price: floatPtr(0)})
	require.NoError(t, err)
	require.Zero(t, item.Price)
}

func TestSearchMatchesNameOrCategory(t *testing.T) {

	model := newTestModel(t)

	for _, candidate := range []objects.ItemCandidate{
		{Name: "power tool", Category: "Hardware", Price: floatPtr(25)},
		{Name: "Lamp", Category: "Tools", Price: floatPtr(12)},
		{Name: "Chair", Category: "Furniture", Price: floatPtr(80)},
	} {
		_, err := model.Insert(candidate)
		require.NoError(t, err)
	}

	page, err := model.Search(models.SearchOption{Search: "Tool"})
	require.NoError(t, err)

	require.Equal(t, 2, page.Total)
	require.Equal(t, "power tool", page.Items[0].Name)
	require.Equal(t, "Tools", page.Items[1].Category)
}

func TestSearchTotalStableAcrossPages(t *testing.T) {

	model := newTestModel(t)

	for i := 0; i < 12; i++ {
		_, err := model.Insert(fakeCandidate())
		require.NoError(t, err)
	}

	first, err := model.Search(models.SearchOption{CurrentPage: 1, PageSize: 5})
	require.NoError(t, err)

	second, err := model.Search(models.SearchOption{CurrentPage: 3, PageSize: 5})
	require.NoError(t, err)

	require.Equal(t, 12, first.Total)
	require.Equal(t, first.Total, second.Total)
	require.Len(t, first.Items, 5)
	require.Len(t, second.Items, 2)
}

func TestSearchRejectsNegativeOptions(t *testing.T) {

	model := newTestModel(t)

	_, err := model.Search(models.SearchOption{CurrentPage: -1})
	requireErrorCode(t, err, serverErrors.CurrentPageInvalidErrorCode)

	_, err = model.Search(models.SearchOption{PageSize: -1})
	requireErrorCode(t, err, serverErrors.PageSizeInvalidErrorCode)
}

func TestSearchPropagatesStorageFailure(t *testing.T) {

	model := newTestModel(t)

	_, err := model.Search(models.SearchOption{})
	requireErrorCode(t, err, serverErrors.StorageUnavailableErrorCode)
}
