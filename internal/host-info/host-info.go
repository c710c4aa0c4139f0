package hostinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/host"
)

// supportedOS lists the systems whose process table can be queried
var supportedOS = []string{"darwin", "linux"}

type HostInfo struct {
	OS              string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	KernelArch      string
}

func (h HostInfo) String() string {
	return fmt.Sprintf("%s/%s %s %s (kernel %s)",
		h.OS, h.KernelArch, h.Platform, h.PlatformVersion, h.KernelVersion)
}

func GetHostInfo() (h HostInfo, err error) {
	info, err := host.Info()
	if err != nil {
		return h, errors.WithMessage(err, "failed to get host info")
	}
	return HostInfo{
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   strings.TrimSpace(info.KernelVersion),
		KernelArch:      info.KernelArch,
	}, nil
}

// CheckSupported reports an error if the process table of goos can not be queried
func CheckSupported(goos string) error {
	for _, s := range supportedOS {
		if goos == s {
			return nil
		}
	}
	return errors.Errorf("OS '%s' is not supported, have to be one of %s",
		goos, strings.Join(supportedOS, "|"))
}

func CheckCurrentSupported() error {
	return CheckSupported(runtime.GOOS)
}
