package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Failed renders
// are logged at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnRenderStart(_ context.Context, engine string, index uint64, kind string) {
	h.logger.Debug("render start", "engine", engine, "index", index, "kind", kind)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, engine string, index uint64, kind string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "engine", engine, "index", index, "kind", kind, "error", err)
		return
	}
	h.logger.Debug("render done", "engine", engine, "index", index, "kind", kind, "bytes", size, "duration", d)
}

func (h *LogHooks) OnExportStart(_ context.Context, start, end uint64) {
	h.logger.Debug("export start", "start", start, "end", end)
}

func (h *LogHooks) OnExportComplete(_ context.Context, count int, d time.Duration, err error) {
	h.logger.Debug("export done", "tokens", count, "duration", d, "error", err)
}

func (h *LogHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("cache hit", "kind", kind)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("cache miss", "kind", kind)
}

func (h *LogHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache set", "kind", kind, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}

var (
	_ RenderHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ ServerHooks = (*LogHooks)(nil)
)
