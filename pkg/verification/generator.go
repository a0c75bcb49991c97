package verification

import (
	"math/rand"
	"strconv"
)

// CodeGenerator produces a one-time verification code.
type CodeGenerator func() string

// GenerateCode returns a uniformly random six-digit code in 100000-999999,
// so the leading digit is never zero. The draw is not cryptographically
// secure; the short expiry and out-of-band email delivery bound the exposure.
// Callers needing stronger guarantees can swap in a crypto/rand backed
// CodeGenerator via WithCodeGenerator.
func GenerateCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
