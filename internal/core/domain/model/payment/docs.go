// Package payment provides the payment-transaction side of the ordering domain.
// It models the closed set of supported providers, the transaction status
// state machine, and the Transaction record produced by a charge attempt.
//
// A provider decline is modeled as a Failed transaction, never as an error;
// errors are reserved for infrastructure-level faults.
package payment
