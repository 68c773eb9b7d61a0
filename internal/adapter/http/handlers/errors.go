package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/dynamicsamic/Todo/internal/adapter/http/middleware"
	httpvalidation "github.com/dynamicsamic/Todo/internal/adapter/http/validation"
	"github.com/dynamicsamic/Todo/internal/app/validation"
	"github.com/dynamicsamic/Todo/internal/core/domain"
	"github.com/dynamicsamic/Todo/pkg/apierrors"
)

func init() {
	// Request bodies with fields the API does not know are rejected.
	binding.EnableDecoderDisallowUnknownFields = true
}

// ids carries the identifiers of the request for not-found messages.
type ids struct {
	todoID int64
	taskID int64
}

func (i ids) templateData() map[string]any {
	return map[string]any{"TodoID": i.todoID, "TaskID": i.taskID}
}

// writeError maps a service error to its status code and translated body.
// Unclassified errors are logged and answered with failKey.
func writeError(c *gin.Context, err error, failKey string, reqIDs ids) {
	lang := middleware.GetLang(c)

	var badRequest *validation.BadRequestError
	switch {
	case errors.As(err, &badRequest):
		writeBadRequest(c, apierrors.MsgInvalidPayload, badRequest.Details())
	case errors.Is(err, domain.ErrTodoNotFound), errors.Is(err, domain.ErrInvalidReference):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateErrorWithData(http.StatusNotFound, apierrors.MsgTodoNotFound, lang, reqIDs.templateData()),
		)
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateErrorWithData(http.StatusNotFound, apierrors.MsgTaskNotFound, lang, reqIDs.templateData()),
		)
	case errors.Is(err, domain.ErrConflict):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(http.StatusConflict, apierrors.MsgOwnerTaken, lang),
		)
	default:
		zap.L().Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("message_id", failKey),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}

func writeBadRequest(c *gin.Context, msgKey string, details string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateErrorWithData(http.StatusBadRequest, msgKey, middleware.GetLang(c), map[string]any{"Details": details}),
	)
}

func writeQueryError(c *gin.Context, err error) {
	if errors.Is(err, httpvalidation.ErrInvalidQuery) {
		writeBadRequest(c, apierrors.MsgInvalidQuery, err.Error())
		return
	}
	writeBadRequest(c, apierrors.MsgInvalidQuery, "malformed query")
}

// pathID parses a path parameter holding a todo or task id.
func pathID(c *gin.Context, name string, msgKey string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 || id > domain.MaxID {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
		)
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body strictly and answers 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeBadRequest(c, apierrors.MsgInvalidPayload, err.Error())
		return false
	}
	return true
}

func setTotalEstimate(c *gin.Context, estimate func() (int64, error)) {
	total, err := estimate()
	if err != nil {
		zap.L().Warn("failed to estimate row count", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		return
	}
	c.Header(TotalEstimateHeader, strconv.FormatInt(total, 10))
}

const TotalEstimateHeader = "X-Total-Estimate"
