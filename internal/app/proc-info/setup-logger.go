package proc_info

import (
	"strings"

	"github.com/H-BF/corlib/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// SetupLogger setup app logger level
func SetupLogger(level string) error {
	l, err := parseLogLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(l)
	return nil
}

func parseLogLevel(level string) (l zapcore.Level, err error) {
	s := strings.ToLower(strings.TrimSpace(level))
	if err = l.UnmarshalText([]byte(s)); err != nil {
		return l, errors.WithMessagef(err, "recognize '%s' logger level", level)
	}
	return l, nil
}
