package procwatcher

import (
	"context"

	"github.com/Morwran/proc-info/internal/model"
)

type (
	Watcher interface {
		Run(context.Context) error
		Close() error
		EvtReader() <-chan model.ProcessEvent
	}

	// ResolveFunc reads one process snapshot, as procinfo.GetProcessInfo does
	ResolveFunc func(pid int) (model.ProcessInfo, error)
)
