// Package inventory models per-product stock rows, the append-only movement
// ledger and the failure kinds raised while checking or reserving stock.
package inventory
