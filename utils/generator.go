package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// GenerateOTP returns a 6-digit one-time code for password resets.
func GenerateOTP() string {
	var buf [4]byte
	rand.Read(buf[:])
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(buf[:])%1000000)
}
