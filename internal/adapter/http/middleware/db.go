package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	dbadapter "github.com/dynamicsamic/Todo/internal/adapter/db"
	"github.com/dynamicsamic/Todo/pkg/apierrors"
)

// DBConnMiddleware checks out one pooled connection per request and releases
// it once the handler chain returns.
func DBConnMiddleware(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		conn, err := db.Connx(ctx)
		if err != nil {
			zap.L().Error("failed to acquire database connection", zap.String("request_id", GetRequestID(c)), zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusServiceUnavailable,
				apierrors.CreateError(http.StatusServiceUnavailable, apierrors.MsgDatabaseUnavailable, GetLang(c)),
			)
			return
		}
		defer func() {
			if err := conn.Close(); err != nil {
				zap.L().Warn("failed to release database connection", zap.Error(err))
			}
		}()

		c.Request = c.Request.WithContext(dbadapter.WithConn(ctx, conn))
		c.Next()
	}
}
