package main

import (
	"os"

	"go.uber.org/zap"

	askai "github.com/arbiter1elegantiae/askai/cmd/askai"
)

func main() {
	logger := zap.Must(zap.NewProduction())

	executionErr := askai.Execute()
	if executionErr != nil {
		logger.Error("command execution failed", zap.Error(executionErr))
		_ = logger.Sync()
		os.Exit(askai.ExitCode(executionErr))
	}

	syncErr := logger.Sync()
	if syncErr != nil {
		os.Exit(1)
	}
}
