package proc_info

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	LogLevel      string
	WatchInterval time.Duration
	Pids          pidList
)

func init() {
	flag.StringVar(&LogLevel, "level", "INFO", "log level: INFO|DEBUG|WARN|ERROR|PANIC|FATAL")
	flag.Var(&Pids, "pid", "pid to query, may be repeated or comma separated (default: own pid)")
	flag.DurationVar(&WatchInterval, "watch", 0, "poll interval to watch pids for changes; 0 queries once")
}

// TargetPids pids given with -pid or the own pid
func TargetPids() []int {
	if len(Pids) == 0 {
		return []int{os.Getpid()}
	}
	return Pids
}

type pidList []int

var _ flag.Value = (*pidList)(nil)

func (p *pidList) String() string {
	if p == nil {
		return ""
	}
	s := make([]string, 0, len(*p))
	for _, pid := range *p {
		s = append(s, strconv.Itoa(pid))
	}
	return strings.Join(s, ",")
}

func (p *pidList) Set(v string) error {
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		pid, err := strconv.Atoi(s)
		if err != nil {
			return errors.Errorf("bad pid '%s'", s)
		}
		if pid < 0 {
			return errors.Errorf("pid %d is negative", pid)
		}
		*p = append(*p, pid)
	}
	return nil
}
