package scheduling

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// fuzzInterval spreads intervals of at least FuzzMinIntervalDays by up to
// FuzzFactor in either direction so cards graded together do not all come
// back on the same day. The offset is a pure function of the card, the
// interval and the day it was computed on.
func fuzzInterval(cardID string, interval int, today Day, p Parameters) int {
	if !p.Fuzz || interval < p.FuzzMinIntervalDays {
		return interval
	}
	spread := interval * int(p.FuzzFactor) / factorScale
	if spread < 1 {
		return interval
	}

	key := cardID + ":" + strconv.Itoa(interval) + ":" + strconv.Itoa(int(today))
	offset := int(xxhash.Sum64String(key)%uint64(2*spread+1)) - spread
	return p.clampInterval(interval + offset)
}
