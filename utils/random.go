// utils/random.go
package utils

import "crypto/rand"

const referenceCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRandomString returns a short random reference of length n, used
// for human-readable receipt numbers.
func GenerateRandomString(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to read random bytes")
	}
	for i := range buf {
		buf[i] = referenceCharset[int(buf[i])%len(referenceCharset)]
	}
	return string(buf)
}
