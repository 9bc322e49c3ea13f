package monitor

import "errors"

var (
	errFetcherRequired = errors.New("fetcher is required")
)
