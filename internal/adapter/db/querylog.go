package db

import (
	"time"

	"go.uber.org/zap"
)

func logQuery(query string, args []any, start time.Time) {
	zap.L().Debug("sql query",
		zap.String("query", query),
		zap.Any("args", args),
		zap.Duration("elapsed", time.Since(start)),
	)
}
