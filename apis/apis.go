package apis

import (
	"github.com/gin-gonic/gin"

	"go-catalog/errors"
	"go-catalog/models"
	"go-catalog/objects"
)

// ErrorBody is the envelope of every non-2xx response. Success responses
// carry their payload bare: a page, an item or a stats aggregate.
type ErrorBody struct {
	Error errors.BaseError `json:"error"`
}

type ItemsAPI interface {
	Read(ctx *gin.Context) (*models.PaginationData[objects.Item], error)
	ReadOne(itemID string, ctx *gin.Context) (*objects.Item, error)
	Create(ctx *gin.Context) (*objects.Item, error)
	ReadStats(ctx *gin.Context) (*objects.Stats, error)
}
