package notifier

import (
	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/domain/listing"
)

// Notifier posts marketplace events to an external channel. Failures are
// logged and swallowed by callers, notifications are best effort.
type Notifier interface {
	NotifySold(c ctx.Ctx, row *listing.Listing, buyer string) error
	NotifyRepaired(c ctx.Ctx, before, after *listing.Listing) error
}
