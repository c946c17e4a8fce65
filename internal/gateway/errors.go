package gateway

import "errors"

var (
	ErrDiscoveryFailed = errors.New("gateway: no device found")
	ErrConnectFailed   = errors.New("gateway: connect failed")
	ErrFetchTimeout    = errors.New("gateway: fetch timed out")
)
