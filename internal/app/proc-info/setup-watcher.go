package proc_info

import (
	procinfo "github.com/Morwran/proc-info/internal/proc-info"
	procwatcher "github.com/Morwran/proc-info/internal/proc-watcher"
)

func SetupWatcher() (procwatcher.Watcher, error) {
	return procwatcher.NewPollWatcher(procinfo.GetProcessInfo, WatchInterval, TargetPids()...)
}
