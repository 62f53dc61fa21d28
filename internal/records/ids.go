package records

import (
	"math/rand"
	"strconv"
	"time"
)

const idSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates a record ID: unix milliseconds plus a 6-character base36
// suffix. Unique within a single device's clock and entropy, which is the only
// scope the store serves.
func NewID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idSuffixAlphabet[rand.Intn(len(idSuffixAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}
