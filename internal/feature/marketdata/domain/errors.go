// Package domain defines domain-level errors for the marketdata feature.
package domain

import (
	"errors"
	"fmt"
)

// Failure kinds for a single provider attempt. The orchestrator inspects
// these to decide between fallthrough and terminal failure; adapters never
// let a raw transport error cross this boundary untagged.
var (
	// ErrNoData indicates the symbol/period combination yielded nothing
	// from the provider. Non-retryable; triggers fallthrough.
	ErrNoData = errors.New("no data for symbol and period")

	// ErrTransient indicates a network failure (connect, timeout, HTTP
	// error status) that persisted after the local retry budget.
	ErrTransient = errors.New("transient network failure")

	// ErrMalformedPayload indicates the upstream response did not match
	// the expected schema. Non-retryable; triggers fallthrough.
	ErrMalformedPayload = errors.New("malformed upstream payload")

	// ErrAllProvidersFailed is the terminal error returned to callers
	// when every provider in the chain has failed.
	ErrAllProvidersFailed = errors.New("all providers failed")
)

// AcquisitionError tags a provider failure with the originating provider
// and one of the failure kinds above.
type AcquisitionError struct {
	Provider string // provider identity, e.g. "eastmoney"
	Kind     error  // ErrNoData, ErrTransient or ErrMalformedPayload
	Err      error  // underlying cause, may be nil
}

func (e *AcquisitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Kind)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *AcquisitionError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NoData builds an AcquisitionError of kind ErrNoData.
func NoData(provider string, err error) *AcquisitionError {
	return &AcquisitionError{Provider: provider, Kind: ErrNoData, Err: err}
}

// Transient builds an AcquisitionError of kind ErrTransient.
func Transient(provider string, err error) *AcquisitionError {
	return &AcquisitionError{Provider: provider, Kind: ErrTransient, Err: err}
}

// Malformed builds an AcquisitionError of kind ErrMalformedPayload.
func Malformed(provider string, err error) *AcquisitionError {
	return &AcquisitionError{Provider: provider, Kind: ErrMalformedPayload, Err: err}
}
