package procwatcher

import (
	"context"
	"sync"
	"time"

	"github.com/Morwran/proc-info/internal/model"
	procinfo "github.com/Morwran/proc-info/internal/proc-info"

	"github.com/H-BF/corlib/logger"
	"github.com/H-BF/corlib/pkg/queue"
	"github.com/pkg/errors"
)

var _ Watcher = (*pollWatcher)(nil)

type (
	pollWatcher struct {
		resolve   ResolveFunc
		interval  time.Duration
		pids      []int
		que       queue.FIFO[model.ProcessEvent]
		onceRun   sync.Once
		onceClose sync.Once
		stop      chan struct{}
		stopped   chan struct{}
	}
)

// NewPollWatcher polls pids every interval and reports every change of their
// parent or group, and their disappearance.
func NewPollWatcher(resolve ResolveFunc, interval time.Duration, pids ...int) (*pollWatcher, error) {
	if resolve == nil {
		return nil, errors.New("no resolver")
	}
	if interval <= 0 {
		return nil, errors.Errorf("poll interval has to be positive, got %s", interval)
	}
	if len(pids) == 0 {
		return nil, errors.New("no pids to watch")
	}
	return &pollWatcher{
		resolve:  resolve,
		interval: interval,
		pids:     append([]int(nil), pids...),
		que:      queue.NewFIFO[model.ProcessEvent](),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}, nil
}

func (w *pollWatcher) Run(ctx context.Context) error {
	var doRun bool

	w.onceRun.Do(func() {
		doRun = true
	})
	if !doRun {
		return errors.New("it has been run or closed yet")
	}

	log := logger.FromContext(ctx).Named("poll-watcher")
	defer func() {
		log.Info("stop")
		close(w.stopped)
	}()
	log.Infof("start; pids=%v interval=%s", w.pids, w.interval)

	last := make(map[int]model.ProcessInfo, len(w.pids))
	alive := append([]int(nil), w.pids...)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		var err error
		if alive, err = w.poll(alive, last); err != nil {
			return err
		}
		if len(alive) == 0 {
			log.Info("all watched processes are gone")
			return nil
		}
		select {
		case <-ctx.Done():
			log.Info("will exit cause ctx canceled")
			return ctx.Err()
		case <-w.stop:
			return nil
		case <-ticker.C:
		}
	}
}

// EvtReader
func (w *pollWatcher) EvtReader() <-chan model.ProcessEvent {
	return w.que.Reader()
}

// Close stops Run, waits for it to return and closes the event queue
func (w *pollWatcher) Close() error {
	w.onceClose.Do(func() {
		close(w.stop)
		w.onceRun.Do(func() {
			close(w.stopped)
		})
		<-w.stopped
		_ = w.que.Close()
	})
	return nil
}

func (w *pollWatcher) poll(pids []int, last map[int]model.ProcessInfo) ([]int, error) {
	alive := pids[:0]
	for _, pid := range pids {
		info, err := w.resolve(pid)
		if errors.Is(err, procinfo.ErrNotFound) {
			delete(last, pid)
			w.que.Put(model.ProcessEvent{Pid: pid, Gone: true})
			continue
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "poll pid %d", pid)
		}
		alive = append(alive, pid)
		if prev, seen := last[pid]; seen && prev == info {
			continue
		}
		last[pid] = info
		w.que.Put(model.ProcessEvent{Pid: pid, Info: info})
	}
	return alive, nil
}
