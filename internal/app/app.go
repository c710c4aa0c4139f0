package app

import (
	"context"
	"sync"
)

// Version is set at build time: -ldflags "-X github.com/Morwran/proc-info/internal/app.Version=..."
var Version = "dev"

var (
	appCtx   = context.Background()
	appCtxMu sync.RWMutex
)

// SetContext sets the root application context
func SetContext(ctx context.Context) {
	appCtxMu.Lock()
	defer appCtxMu.Unlock()
	appCtx = ctx
}

// Context returns the root application context
func Context() context.Context {
	appCtxMu.RLock()
	defer appCtxMu.RUnlock()
	return appCtx
}

func GetVersion() string {
	return Version
}
