package model

type (
	// ProcessInfo is a point-in-time snapshot of a process' parent and group
	ProcessInfo struct {
		Ppid int
		Pgid int
	}

	// ProcessEvent is emitted when a watched process changes or disappears
	ProcessEvent struct {
		Pid  int
		Info ProcessInfo
		Gone bool
	}
)
