//go:build linux

package procinfo

import (
	"bytes"
	"os"
	"strconv"
	"syscall"

	"github.com/Morwran/proc-info/internal/model"

	"github.com/pkg/errors"
)

const procRoot = "/proc"

func getProcessInfo(pid int) (model.ProcessInfo, error) {
	statFile := procRoot + "/" + strconv.Itoa(pid) + "/stat"
	data, err := os.ReadFile(statFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ESRCH) {
			return model.ProcessInfo{}, notFound(pid)
		}
		return model.ProcessInfo{}, queryFailure(pid, err)
	}
	info, err := parseStat(data)
	if err != nil {
		return model.ProcessInfo{}, queryFailure(pid, errors.WithMessagef(err, "parse %s", statFile))
	}
	return info, nil
}

// parseStat extracts ppid and pgrp from a /proc/<pid>/stat record:
//
//	pid (comm) state ppid pgrp session ...
//
// comm may hold spaces and parentheses, so parsing starts after the last ')'.
func parseStat(data []byte) (info model.ProcessInfo, err error) {
	i := bytes.LastIndexByte(data, ')')
	if i < 0 {
		return info, errors.New("no command name terminator")
	}
	fields := bytes.Fields(data[i+1:])
	if len(fields) < 3 {
		return info, errors.Errorf("too few fields: %d", len(fields))
	}
	ppid, err := strconv.Atoi(string(fields[1]))
	if err != nil {
		return info, errors.WithMessage(err, "ppid")
	}
	pgid, err := strconv.Atoi(string(fields[2]))
	if err != nil {
		return info, errors.WithMessage(err, "pgrp")
	}
	return model.ProcessInfo{Ppid: ppid, Pgid: pgid}, nil
}
