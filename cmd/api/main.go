package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	defer func() {
		if err := zap.L().Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		zap.L().Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
