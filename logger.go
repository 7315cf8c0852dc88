package upscale

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// discard is the default logger. Its handler reports every level as
// disabled, so a log call on it costs an atomic load and a branch.
var discard = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discard)
}

// SetLogger installs the logger used by the scaler. Nil restores the
// silent default. It may be called while scale calls are in flight.
//
// Records emitted:
//   - [slog.LevelDebug] "upscale: scale" once per call, with the mapping
//     (regions, clip, axis case, steps), the kernel and whether the direct
//     path was taken
//   - [slog.LevelWarn] "upscale: rejected" when validation fails
//
// Nothing is logged inside the per-row loops.
//
// Example:
//
//	upscale.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger installed with SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}

// LogValue groups the mapping of one call.
func (g geometry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("src", g.src.String()),
		slog.String("dst", g.dst.String()),
		slog.String("clip", g.clip.String()),
		slog.String("axis", g.axis.String()),
		slog.Int("step_x", int(g.stepX)),
		slog.Int("step_y", int(g.stepY)),
	)
}

// String formats r as x,y+wxh.
func (r Rect) String() string {
	return fmt.Sprintf("%d,%d+%dx%d", r.X, r.Y, r.Width, r.Height)
}

// logScale records the path chosen for one call. Attributes are only built
// when debug output is enabled.
func logScale(s *scaler, op Op) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("upscale: scale",
		"geometry", s.g,
		"kernel", fmt.Sprintf("%T", s.kernel),
		"direct", s.direct,
		"op", op)
}

func logRejected(err error) {
	Logger().Warn("upscale: rejected", "err", err)
}
