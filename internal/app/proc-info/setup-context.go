package proc_info

import (
	"context"

	"github.com/Morwran/proc-info/internal/app"

	"github.com/H-BF/corlib/logger"
	"github.com/H-BF/corlib/pkg/signals"
	"go.uber.org/zap"
)

// SetupContext sets the app root context with a named logger; the context is
// canceled on a stop signal.
func SetupContext() {
	ctx, cancel := context.WithCancel(context.Background())
	log := logger.FromContext(ctx).Named("proc-info")
	signals.WhenSignalExit(func() error {
		logger.SetLevel(zap.InfoLevel)
		log.Infof("caught stop signal; stop querying pids %v", TargetPids())
		cancel()
		return nil
	})
	app.SetContext(logger.ToContext(ctx, log))
}
