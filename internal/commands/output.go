package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/carson-networks/budget-analysis/internal/logging"
)

func newLogData(level string, out io.Writer) (*logging.LogData, error) {
	logger, err := logging.SetupLoggingWithLevel(level)
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}
	logger.SetOutput(out)
	return logging.NewLogData(logger), nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

func logComplete(logData *logging.LogData, name string) {
	logData.Log().Infof("Command.%s.Complete", name)
}
