package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

// DefaultSignals end both the CLI and the server.
var DefaultSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Context returns a child of parent that is cancelled on the first of
// signals, or on DefaultSignals when none are given. The received signal is
// logged once.
func Context(parent context.Context, log *logging.Logger, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		signals = DefaultSignals
	}
	if log == nil {
		log = logging.NewNop()
	}

	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)

	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			log.Info("shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// Graceful blocks until a signal arrives, then stops s within timeout.
func Graceful(signals []os.Signal, s Stoppable, timeout time.Duration, log *logging.Logger) {
	if log == nil {
		log = logging.NewNop()
	}
	sigCtx, stop := Context(context.Background(), log, signals...)
	defer stop()

	<-sigCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
		return
	}
	log.Info("graceful shutdown completed")
}
