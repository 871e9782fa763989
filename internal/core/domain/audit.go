package domain

import "time"

// AuditEntry is one immutable line of a TRF's status history. Entries are
// created only by the workflow services, in the same transaction as the
// status write, and are never edited or deleted.
type AuditEntry struct {
	EntryID       string    `json:"entryID"`
	TRFID         string    `json:"trfID"`
	ChangedBy     string    `json:"changedBy"`
	ChangedByName string    `json:"changedByName"`
	FromStatus    TRFStatus `json:"fromStatus,omitempty"` // empty only for the creation entry
	ToStatus      TRFStatus `json:"toStatus"`
	Remarks       string    `json:"remarks,omitempty"`
	ChangedAt     time.Time `json:"changedAt"`
}
