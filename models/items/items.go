package items

import (
	"strings"
	"time"

	serverErrors "go-catalog/errors"
	"go-catalog/models"
	"go-catalog/objects"
)

// Store is the persistence contract the items model runs on.
// storage.FileStore is the production implementation.
type Store interface {
	List() ([]objects.Item, error)
	GetByID(id int) (objects.Item, error)
	Append(item objects.Item) (objects.Item, error)
	ModTime() (time.Time, error)
}

type ItemsModel struct {
	store Store
}

func NewItemsModel(store Store) *ItemsModel {
	return &ItemsModel{store: store}
}

// Search loads the full collection and pages it in memory. Matching is a
// case-insensitive substring test on name OR category.
func (m *ItemsModel) Search(opt models.SearchOption) (models.PaginationData[objects.Item], error) {

	var empty models.PaginationData[objects.Item]

	if opt.CurrentPage < 0 {
		return empty, serverErrors.CurrentPageInvalidError.New()
	}

	if opt.PageSize < 0 {
		return empty, serverErrors.PageSizeInvalidError.New()
	}

	collection, err := m.store.List()
	if err != nil {
		return empty, err
	}

	return models.Paginate(collection, opt, matchItem), nil
}

func (m *ItemsModel) GetByID(id int) (objects.Item, error) {
	return m.store.GetByID(id)
}

// Insert validates the candidate and appends it; the store assigns the ID.
func (m *ItemsModel) Insert(candidate objects.ItemCandidate) (objects.Item, error) {

	if err := validateCandidate(candidate); err != nil {
		return objects.Item{}, err
	}

	return m.store.Append(objects.Item{
		Name:     candidate.Name,
		Category: candidate.Category,
		Price:    *candidate.Price,
	})
}

func matchItem(item objects.Item, search string) bool {

	search = strings.ToLower(search)

	return strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strings.ToLower(item.Category), search)
}

func validateCandidate(candidate objects.ItemCandidate) error {

	if strings.TrimSpace(candidate.Name) == "" {
		return serverErrors.ValidationError.New("name must be non-empty text")
	}

	if strings.TrimSpace(candidate.Category) == "" {
		return serverErrors.ValidationError.New("category must be non-empty text")
	}

	if candidate.Price == nil {
		return serverErrors.ValidationError.New("price is required")
	}

	if *candidate.Price < 0 {
		return serverErrors.ValidationError.New("price must be a non-negative number")
	}

	return nil
}
