package services

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// generateRandomToken returns a 64-char hex token for email verification
// and password reset links.
func generateRandomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}
	return hex.EncodeToString(bytes)
}

// Referral codes avoid 0/O and 1/I so they survive being read aloud.
const referralCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateReferralCode returns an 8-char shareable code.
func generateReferralCode() string {
	code := make([]byte, 8)
	max := big.NewInt(int64(len(referralCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return ""
		}
		code[i] = referralCodeAlphabet[n.Int64()]
	}
	return string(code)
}
