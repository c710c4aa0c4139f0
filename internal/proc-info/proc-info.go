package procinfo

import (
	"fmt"

	"github.com/Morwran/proc-info/internal/model"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound the kernel has no entry for the pid
	ErrNotFound = errors.New("process not found")

	// ErrQueryFailure the process table query itself failed
	ErrQueryFailure = errors.New("process table query failed")

	// ErrInvalidPid pid is out of the valid range
	ErrInvalidPid = errors.New("invalid pid")
)

// QueryError describes a failed process table query. It matches ErrQueryFailure.
type QueryError struct {
	Pid int
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s for pid %d: %v", ErrQueryFailure, e.Pid, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailure
}

// GetProcessInfo reads the parent pid and the process group id of pid from the
// live process table. On error the returned ProcessInfo is always zero.
func GetProcessInfo(pid int) (model.ProcessInfo, error) {
	if pid < 0 {
		return model.ProcessInfo{}, errors.WithMessagef(ErrInvalidPid, "pid %d", pid)
	}
	return getProcessInfo(pid)
}

func notFound(pid int) error {
	return errors.WithMessagef(ErrNotFound, "pid %d", pid)
}

func queryFailure(pid int, err error) error {
	return &QueryError{Pid: pid, Err: err}
}
