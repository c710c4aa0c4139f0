//go:build !darwin && !linux

package procinfo

import (
	"runtime"

	"github.com/Morwran/proc-info/internal/model"

	"github.com/pkg/errors"
)

func getProcessInfo(pid int) (model.ProcessInfo, error) {
	return model.ProcessInfo{}, queryFailure(pid, errors.Errorf("not supported on %s", runtime.GOOS))
}
