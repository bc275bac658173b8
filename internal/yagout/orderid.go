package yagout

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"time"
)

var ErrInvalidOrderID = errors.New("invalid order ID format")

var reOrderID = regexp.MustCompile(`^OR-DOIT-\d{4}$`)

// GenerateOrderID produces a fresh OR-DOIT-XXXX identifier. The four digits
// combine the low-order digits of the current millisecond timestamp with a
// zero-padded random number, truncated to four characters. Uniqueness is
// probabilistic only; the gateway rejects true collisions with "Order Id
// already exists" and callers regenerate and retry.
func GenerateOrderID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	suffix := ts[len(ts)-4:]
	random := fmt.Sprintf("%04d", rand.IntN(9999))
	unique := (suffix + random)[:4]
	return "OR-DOIT-" + unique
}

// ValidateOrderID reports whether orderID matches OR-DOIT- followed by exactly
// four digits. The check is case-sensitive.
func ValidateOrderID(orderID string) error {
	if !reOrderID.MatchString(orderID) {
		return ErrInvalidOrderID
	}
	return nil
}

// GenerateOrderNo produces an ORD-prefixed order number for checkout flows
// where the caller did not supply one.
func GenerateOrderNo() string {
	return fmt.Sprintf("ORD%d%d", time.Now().UnixMilli(), rand.IntN(10000))
}
