// Package submit drives one transaction through the two-phase signing
// protocol: ask the ledger to build an unsigned transaction, sign the
// returned payload locally, submit the signed transaction for broadcast.
//
// The private scalar never leaves the flow; each phase is a separate step so
// the state transitions are observable in tests. No retries: every remote
// call is attempted exactly once per flow.
package submit
