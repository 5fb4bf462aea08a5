package tasks

import (
	"time"

	"portfolio-api/internal/logging"
	"portfolio-api/internal/ratelimit"
)

// LedgerSweep periodically evicts expired entries from the submission
// ledger. Without it, keys for senders that went quiet would stay in
// memory for the life of the process.
type LedgerSweep struct {
	store    *ratelimit.MemoryStore
	window   time.Duration
	interval time.Duration
	stop     chan struct{}
}

// NewLedgerSweep creates a sweep task over the given store. window is
// how long entries count toward the rate limit; interval how often the
// sweep runs.
func NewLedgerSweep(store *ratelimit.MemoryStore, window, interval time.Duration) *LedgerSweep {
	return &LedgerSweep{
		store:    store,
		window:   window,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the sweep task in the background
func (ls *LedgerSweep) Start() {
	go ls.runPeriodically()
}

// Stop halts the background sweep
func (ls *LedgerSweep) Stop() {
	close(ls.stop)
}

func (ls *LedgerSweep) runPeriodically() {
	ticker := time.NewTicker(ls.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ls.sweep()
		case <-ls.stop:
			return
		}
	}
}

func (ls *LedgerSweep) sweep() {
	removed := ls.store.Sweep(time.Now(), ls.window)
	if removed > 0 {
		logger := logging.GetLogger()
		logger.Info("Ledger sweep removed %d idle sender keys", removed)
	}
}
