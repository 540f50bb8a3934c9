package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/upstream"
	"github.com/osidou/osidou-web/pkg/ginutil"
)

// respondError maps service and backend failures onto the browser response.
// Failures are reported once; nothing here retries.
func respondError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, "入力内容を確認してください", err)
		return
	case errors.Is(err, common.ErrNoSession), upstream.IsUnauthorized(err):
		common.ErrorResponse(c, http.StatusUnauthorized, "ログインが必要です", err)
		return
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Detail
		if msg == "" {
			msg = fallback
		}
		switch apiErr.Status {
		case http.StatusForbidden:
			common.ErrorResponse(c, http.StatusForbidden, msg, err)
			return
		case http.StatusNotFound:
			common.ErrorResponse(c, http.StatusNotFound, msg, err)
			return
		case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
			common.ErrorResponse(c, http.StatusBadRequest, msg, err)
			return
		}
	}

	common.ErrorResponse(c, http.StatusBadGateway, fallback, err)
}

// parseID reads a positive int64 path parameter
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := ginutil.ParamInt64(c, name)
	if err != nil || id <= 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "IDが不正です", err)
		return 0, false
	}
	return id, true
}
