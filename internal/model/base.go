package model

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

func GenerateUUID() string {
	return uuid.New().String()
}

// sessionCodeAlphabet leaves out 0/O and 1/I/L so codes survive being read aloud.
const sessionCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const SessionCodeLength = 6

func GenerateSessionCode() string {
	buf := make([]byte, SessionCodeLength)
	max := big.NewInt(int64(len(sessionCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand does not fail on supported platforms; fall back to a uuid slice
			return uuid.New().String()[:SessionCodeLength]
		}
		buf[i] = sessionCodeAlphabet[n.Int64()]
	}
	return string(buf)
}
