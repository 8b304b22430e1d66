// Package common defines the closed error taxonomy shared by the service
// layer and the transport boundary. Callers match these values with
// errors.Is; the gRPC layer maps each one to a status code explicitly and
// never falls back to a catch-all.
package common

import "errors"

var (
	// ErrNotFound covers an unknown identity and an unknown or already
	// consumed authentication token.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument covers malformed or out-of-range wire encodings.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidProof means the verification predicate evaluated to false.
	// The attempt is terminal; the prover must start over with a fresh
	// commitment.
	ErrInvalidProof = errors.New("invalid proof")

	// ErrInternal signals a consistency violation, e.g. a live challenge
	// whose user record has vanished.
	ErrInternal = errors.New("internal error")
)
