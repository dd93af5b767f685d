package reconciler

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/solmart/goapi/base/backoff"
	"github.com/solmart/goapi/base/counter"
	bCtx "github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/log"
	"github.com/solmart/goapi/base/metrics"
	"github.com/solmart/goapi/domain/listing"
	"github.com/solmart/goapi/service/notifier"
)

const defaultBatchSize = 10

// Cfg configures one reconciler sweep loop
type Cfg struct {
	Listing     listing.Usecase
	Coordinator listing.Coordinator
	Interval    time.Duration
	BatchSize   int
	// Notifier is optional, divergence repairs are posted when set
	Notifier notifier.Notifier
}

// Reconciler periodically sweeps index rows and overwrites the ones that
// diverged from the ledger. The ledger always wins.
type Reconciler struct {
	listing     listing.Usecase
	coordinator listing.Coordinator
	interval    time.Duration
	batchSize   int
	notifier    notifier.Notifier
	met         metrics.Service
}

func New(cfg *Cfg) *Reconciler {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Reconciler{
		listing:     cfg.Listing,
		coordinator: cfg.Coordinator,
		interval:    cfg.Interval,
		batchSize:   batchSize,
		notifier:    cfg.Notifier,
		met:         metrics.New("reconcile"),
	}
}

// Loop sweeps until the context is done. Sweep failures back off
// exponentially, a clean sweep resets the pace to the configured interval.
func (r *Reconciler) Loop(c bCtx.Ctx) error {
	bo := backoff.NewExponential(r.interval, 10*r.interval)
	for {
		fixed, err := r.SweepOnce(c)
		if err != nil {
			c.WithField("err", err).Error("SweepOnce failed")
		} else {
			if fixed > 0 {
				c.WithField("fixed", fixed).Info("sweep repaired rows")
			}
			bo.Reset()
		}

		if err := bo.Backoff(c); err != nil {
			// context is done
			return err
		}
	}
}

// SweepOnce refreshes every index row from the ledger and reports how many
// rows were repaired.
func (r *Reconciler) SweepOnce(c bCtx.Ctx) (int, error) {
	defer r.met.BumpTime("reconcile.time").End()

	rows, err := r.listing.GetAll(c)
	if err != nil {
		c.WithField("err", err).Error("listing.GetAll failed")
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	fixed := counter.NewCounter()

	b := goroutines.NewBatch(r.batchSize, goroutines.WithBatchSize(len(rows)))
	defer b.Close()
	for i := 0; i < len(rows); i++ {
		row := rows[i]
		b.Queue(func() (interface{}, error) {
			fresh, err := r.coordinator.Refresh(c, row.Mint)
			if err != nil {
				return nil, err
			}
			if diverged(row, fresh) {
				fixed.Add(1)
				c.WithFields(log.Fields{
					"mint":         row.Mint,
					"indexOwner":   row.Owner,
					"ledgerOwner":  fresh.Owner,
					"indexListed":  row.Listed,
					"ledgerListed": fresh.Listed,
				}).Warn("index row diverged from ledger")
				if r.notifier != nil {
					// best effort
					if soldBehindIndex(row, fresh) {
						_ = r.notifier.NotifySold(c, row, fresh.Owner.String())
					} else {
						_ = r.notifier.NotifyRepaired(c, row, fresh)
					}
				}
			}
			return nil, nil
		})
	}
	b.QueueComplete()

	var sweepErr error
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Warn("refresh failed during sweep")
			sweepErr = ret.Error()
		}
	}

	r.met.BumpSum("reconcile.fixed", float64(fixed.Count()))
	return fixed.Count(), sweepErr
}

// soldBehindIndex detects a sale the index missed, a listed row whose
// listing closed on the ledger with ownership moving to another account
func soldBehindIndex(index, ledger *listing.Listing) bool {
	return index.Listed && !ledger.Listed && !index.Owner.Equals(ledger.Owner)
}

func diverged(index, ledger *listing.Listing) bool {
	return !index.Owner.Equals(ledger.Owner) ||
		index.Listed != ledger.Listed ||
		index.Price != ledger.Price
}
