package items

import (
	"strconv"

	"github.com/gin-gonic/gin"

	serverErrors "go-catalog/errors"
	"go-catalog/models"
	itemsModel "go-catalog/models/items"
	"go-catalog/objects"
)

type ItemsCrudAPI struct {
	model *itemsModel.ItemsModel
	stats *itemsModel.StatsCache
}

func NewItemsAPI(store itemsModel.Store) *ItemsCrudAPI {

	return &ItemsCrudAPI{
		model: itemsModel.NewItemsModel(store),
		stats: itemsModel.NewStatsCache(store),
	}
}

func (api *ItemsCrudAPI) Read(ctx *gin.Context) (*models.PaginationData[objects.Item], error) {

	opt, err := parseSearchOption(ctx)
	if err != nil {
		return nil, err
	}

	page, err := api.model.Search(opt)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

func (api *ItemsCrudAPI) ReadOne(itemID string, ctx *gin.Context) (*objects.Item, error) {

	// An unparsable ID was never created, so it maps to 404 like any
	// other unknown ID.
	id, err := strconv.Atoi(itemID)
	if err != nil {
		return nil, serverErrors.ItemNotFoundError.New(itemID)
	}

	item, err := api.model.GetByID(id)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (api *ItemsCrudAPI) Create(ctx *gin.Context) (*objects.Item, error) {

	var candidate objects.ItemCandidate
	if err := ctx.ShouldBindJSON(&candidate); err != nil {
		return nil, serverErrors.ValidationError.New(err)
	}

	item, err := api.model.Insert(candidate)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (api *ItemsCrudAPI) ReadStats(ctx *gin.Context) (*objects.Stats, error) {

	stats, err := api.stats.Stats()
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func parseSearchOption(ctx *gin.Context) (models.SearchOption, error) {

	opt := models.SearchOption{Search: ctx.Query("search")}

	if raw := ctx.Query("page"); raw != "" {

		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return opt, serverErrors.CurrentPageInvalidError.New()
		}

		opt.CurrentPage = page
	}

	if raw := ctx.Query("limit"); raw != "" {

		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return opt, serverErrors.PageSizeInvalidError.New()
		}

		opt.PageSize = limit
	}

	return opt, nil
}
