//go:build darwin

package procinfo

import (
	"unsafe"

	"github.com/Morwran/proc-info/internal/model"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const kernProcPid = "kern.proc.pid"

// SysctlRaw probes the entry size first and then reads into a buffer of that
// size, so the layout of kinfo_proc is never assumed here.
func getProcessInfo(pid int) (model.ProcessInfo, error) {
	buf, err := unix.SysctlRaw(kernProcPid, pid)
	if err != nil {
		if errors.Is(err, unix.ESRCH) {
			return model.ProcessInfo{}, notFound(pid)
		}
		return model.ProcessInfo{}, queryFailure(pid, errors.WithMessage(err, kernProcPid))
	}
	switch {
	case len(buf) == 0:
		return model.ProcessInfo{}, notFound(pid)
	case len(buf) != unix.SizeofKinfoProc:
		return model.ProcessInfo{}, queryFailure(pid,
			errors.Errorf("%s returned %d bytes, want one entry of %d",
				kernProcPid, len(buf), unix.SizeofKinfoProc))
	}
	kp := *(*unix.KinfoProc)(unsafe.Pointer(&buf[0]))
	if int(kp.Proc.P_pid) != pid {
		return model.ProcessInfo{}, queryFailure(pid,
			errors.Errorf("%s returned entry of pid %d", kernProcPid, kp.Proc.P_pid))
	}
	return model.ProcessInfo{
		Ppid: int(kp.Eproc.Ppid),
		Pgid: int(kp.Eproc.Pgid),
	}, nil
}
