package proc_info

import (
	"os"
	"testing"

	"github.com/Morwran/proc-info/internal/app"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func Test_PidListSet(t *testing.T) {
	testCases := []struct {
		values   []string
		wantPids pidList
		wantErr  bool
	}{
		{values: []string{"1"}, wantPids: pidList{1}},
		{values: []string{"1", "22"}, wantPids: pidList{1, 22}},
		{values: []string{"1, 22,,333"}, wantPids: pidList{1, 22, 333}},
		{values: []string{"0"}, wantPids: pidList{0}},
		{values: []string{"abc"}, wantErr: true},
		{values: []string{"-5"}, wantErr: true},
	}
	for _, tc := range testCases {
		var p pidList
		var err error
		for _, v := range tc.values {
			if err = p.Set(v); err != nil {
				break
			}
		}
		if tc.wantErr {
			require.Error(t, err, tc.values)
			continue
		}
		require.NoError(t, err, tc.values)
		require.Equal(t, tc.wantPids, p)
	}
}

func Test_PidListString(t *testing.T) {
	require.Equal(t, "", (*pidList)(nil).String())
	require.Equal(t, "1,22", (&pidList{1, 22}).String())
}

func Test_ParseLogLevel(t *testing.T) {
	testCases := []struct {
		level     string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{level: "INFO", wantLevel: zapcore.InfoLevel},
		{level: "debug", wantLevel: zapcore.DebugLevel},
		{level: " WARN ", wantLevel: zapcore.WarnLevel},
		{level: "ERROR", wantLevel: zapcore.ErrorLevel},
		{level: "PANIC", wantLevel: zapcore.PanicLevel},
		{level: "FATAL", wantLevel: zapcore.FatalLevel},
		{level: "LOUD", wantErr: true},
	}
	for _, tc := range testCases {
		l, err := parseLogLevel(tc.level)
		if tc.wantErr {
			require.Error(t, err, tc.level)
			continue
		}
		require.NoError(t, err, tc.level)
		require.Equal(t, tc.wantLevel, l)
	}
}

func Test_TargetPids(t *testing.T) {
	saved := Pids
	defer func() { Pids = saved }()

	Pids = nil
	require.Equal(t, []int{os.Getpid()}, TargetPids())

	Pids = pidList{3, 4}
	require.Equal(t, []int{3, 4}, TargetPids())
}

func Test_SetupContext(t *testing.T) {
	SetupContext()
	ctx := app.Context()
	require.NotNil(t, ctx)
	require.NoError(t, ctx.Err())
}
