package holdex

import "errors"

// Sentinel errors returned by the decoding and building functions. They are
// meant to be matched with errors.Is; the wrapping error carries the detail
// (file, line, record).
var (
	// ErrMalformedAsset reports an asset reference record without a stock code.
	// Exchange and dates are optional, the code is not.
	ErrMalformedAsset = errors.New("asset record has no stock code")

	// ErrInvalidInterval reports a holding record whose buy date is after its
	// sell date. Such a record rejects the whole run: there is no meaningful
	// negative-length holding, and skipping it silently would desynchronize
	// the index from the source table.
	ErrInvalidInterval = errors.New("buy date is after sell date")

	// ErrNoHoldings reports an empty holdings table: the day range of the
	// index would be undefined.
	ErrNoHoldings = errors.New("holdings table is empty")
)
