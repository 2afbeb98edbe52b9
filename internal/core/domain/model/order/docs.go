// Package order contains the order aggregate and its lifecycle rules.
//
// An order moves through a fixed forward path:
//
//	Received ──> Preparing ──> OutForDelivery ──> Delivered
//
// Cancellation is a separate, role-gated transition into Cancelled. Delivered
// and Cancelled are terminal: no further status mutation is permitted.
//
// Line items are value snapshots of products taken at placement time, so the
// stored total and receipt never change when live products are edited later.
package order
