// Package order models the Order aggregate: its price-snapshotted items, the
// delivery address snapshot, the status state machine, the audit events written
// for every transition, the rider assignment and the settlement payment.
//
// Status changes are never applied in memory. They are expressed as guarded
// updates against storage (expected status -> next status) and recorded as an
// Event in the same transaction, so the event log and the stored status cannot
// diverge.
package order
