// Package supplier derives the single external supplier key per worker from
// the supplier-link event log. The key and its dates are taken from one
// winning event row, ordered by (UpdatedAt desc, CreatedAt desc, SupplierKey
// desc), rather than from independent per-column maxima; this guarantees the
// reported key and timestamps originate from the same underlying event.
package supplier

import (
	"github.com/agentstation/utc"

	"github.com/talentops/ledgerlens/pkg/rank"
	"github.com/talentops/ledgerlens/pkg/records"
)

// Mapping is the resolved external supplier key for one worker. Exactly one
// mapping exists per worker present in the event log; workers with no events
// are absent and treated as not yet synced downstream.
type Mapping struct {
	WorkerID    records.WorkerID
	SupplierKey records.SupplierKey
	CreatedAt   utc.Time
	UpdatedAt   utc.Time
}

// Map resolves one mapping per worker from the event log.
func Map(events []records.SupplierLinkEvent) map[records.WorkerID]Mapping {
	winners := rank.Top1PerGroup(events,
		func(e records.SupplierLinkEvent) records.WorkerID { return e.WorkerID },
		betterEvent)

	mappings := make(map[records.WorkerID]Mapping, len(winners))
	for workerID, e := range winners {
		mappings[workerID] = Mapping{
			WorkerID:    e.WorkerID,
			SupplierKey: e.SupplierKey,
			CreatedAt:   e.CreatedAt,
			UpdatedAt:   e.UpdatedAt,
		}
	}
	return mappings
}

// betterEvent orders events by recency of update, then creation, then by the
// key itself. Events carry no surrogate ID, so the key is the final leg; two
// byte-identical events are interchangeable and the order is still total.
func betterEvent(c, i records.SupplierLinkEvent) bool {
	if !c.UpdatedAt.Time.Equal(i.UpdatedAt.Time) {
		return c.UpdatedAt.Time.After(i.UpdatedAt.Time)
	}
	if !c.CreatedAt.Time.Equal(i.CreatedAt.Time) {
		return c.CreatedAt.Time.After(i.CreatedAt.Time)
	}
	return c.SupplierKey > i.SupplierKey
}
