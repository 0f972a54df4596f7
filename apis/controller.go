package apis

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-catalog/errors"
)

func RegisterItemsAPI(api ItemsAPI, group *gin.RouterGroup) {

	group.GET("items", func(ctx *gin.Context) {

		page, err := api.Read(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, page)
	})

	group.GET("items/:id", func(ctx *gin.Context) {

		itemID := ctx.Param("id")

		item, err := api.ReadOne(itemID, ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, item)
	})

	group.POST("items", func(ctx *gin.Context) {

		item, err := api.Create(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusCreated, item)
	})

	group.GET("stats", func(ctx *gin.Context) {

		stats, err := api.ReadStats(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, stats)
	})
}

// writeErrorJSON maps model and storage failures onto the contractual
// status codes. Raw errors never reach the client unmapped.
func writeErrorJSON(ctx *gin.Context, err error) {

	assertedError, ok := errors.TryAssertError(err)
	if !ok {
		slog.Error("request failed with unexpected error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorBody{Error: errors.UnknownError.New(err)})
		return
	}

	var statusCode int

	switch assertedError.Code {
	case errors.ItemNotFoundErrorCode:
		statusCode = http.StatusNotFound
	case errors.StorageUnavailableErrorCode:
		slog.Error("item storage failure", "path", ctx.FullPath(), "error", assertedError.Message)
		statusCode = http.StatusInternalServerError
	default:
		statusCode = http.StatusBadRequest
	}

	ctx.JSON(statusCode, ErrorBody{Error: assertedError})
}
