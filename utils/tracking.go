package utils

import (
	"crypto/rand"
	"fmt"
)

const (
	trackingPrefix   = "ESB-"
	trackingLen      = 5
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// TrackingCode returns one candidate code, e.g. "ESB-7K2QX". Uniqueness is the
// caller's problem: retry against the orders table and its unique index.
func TrackingCode() string {
	buf := make([]byte, trackingLen)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("tracking code entropy: %v", err))
	}
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return trackingPrefix + string(buf)
}
