package main

import (
	"context"
	"flag"
	"time"

	"github.com/Morwran/proc-info/internal/app"
	. "github.com/Morwran/proc-info/internal/app/proc-info" //nolint:revive
	hostinfo "github.com/Morwran/proc-info/internal/host-info"
	"github.com/Morwran/proc-info/internal/model"
	procinfo "github.com/Morwran/proc-info/internal/proc-info"
	procwatcher "github.com/Morwran/proc-info/internal/proc-watcher"

	"github.com/H-BF/corlib/logger"
	gs "github.com/H-BF/corlib/pkg/patterns/graceful-shutdown"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	flag.Parse()
	SetupContext()
	ctx := app.Context()
	logger.SetLevel(zap.InfoLevel)
	if h, err := hostinfo.GetHostInfo(); err == nil {
		logger.InfoKV(ctx, "-= HELLO =-", "version", app.GetVersion(), "host", h.String())
	} else {
		logger.InfoKV(ctx, "-= HELLO =-", "version", app.GetVersion())
	}

	if err := SetupLogger(LogLevel); err != nil {
		logger.Fatal(ctx, errors.WithMessage(err, "setup logger"))
	}
	if err := hostinfo.CheckCurrentSupported(); err != nil {
		logger.Fatal(ctx, err)
	}

	var jobErr error
	if WatchInterval <= 0 {
		jobErr = queryOnce(ctx, TargetPids())
	} else {
		jobErr = watch(ctx)
	}
	if jobErr != nil && !errors.Is(jobErr, context.Canceled) {
		logger.Fatal(ctx, jobErr)
	}

	logger.SetLevel(zap.InfoLevel)
	logger.Info(ctx, "-= BYE =-")
}

func queryOnce(ctx context.Context, pids []int) error {
	for _, pid := range pids {
		info, err := procinfo.GetProcessInfo(pid)
		if errors.Is(err, procinfo.ErrNotFound) {
			logger.Warnf(ctx, "pid=%d not found", pid)
			continue
		}
		if err != nil {
			return err
		}
		logger.InfoKV(ctx, "process", "pid", pid, "ppid", info.Ppid, "pgid", info.Pgid)
	}
	return nil
}

func watch(ctx context.Context) error {
	watcher, err := SetupWatcher()
	if err != nil {
		return errors.WithMessage(err, "setup watcher")
	}
	defer watcher.Close() //nolint:errcheck

	return watchLoop(ctx, watcher, func(evt model.ProcessEvent) {
		if evt.Gone {
			logger.Infof(ctx, "pid=%d is gone", evt.Pid)
		} else {
			logger.Infof(ctx, "pid=%d, ppid=%d, pgid=%d", evt.Pid, evt.Info.Ppid, evt.Info.Pgid)
		}
	})
}

// drainIdle is how long to wait for events still held by the queue after Run returned
const drainIdle = 100 * time.Millisecond

func watchLoop(ctx context.Context, watcher procwatcher.Watcher, onEvent func(model.ProcessEvent)) error {
	gracefulDuration := 5 * time.Second
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		errc <- watcher.Run(ctx)
	}()
	var jobErr error

Loop:
	for {
		select {
		case <-ctx.Done():
			if gracefulDuration >= time.Second {
				logger.Infof(ctx, "%s in shutdowning...", gracefulDuration)
				_ = gs.ForDuration(gracefulDuration).Run(
					gs.Chan(errc).Consume(
						func(_ context.Context, err error) {
							jobErr = err
						},
					),
				)
			}
		case jobErr = <-errc:
		case evt, ok := <-watcher.EvtReader():
			if !ok {
				return errors.New("event reader closed")
			}
			onEvent(evt)
			continue
		}
		break Loop
	}

	for {
		select {
		case evt, ok := <-watcher.EvtReader():
			if !ok {
				return jobErr
			}
			onEvent(evt)
		case <-time.After(drainIdle):
			return jobErr
		}
	}
}
