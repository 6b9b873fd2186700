// Package store holds the demo product, order and customer data set behind
// a read-mostly in-memory repository. All agents query the same store; the
// single mutation is order cancellation, which is guarded by a status
// precondition and applied durably for the process lifetime.
package store
