package service

import (
	"crypto/rand"
	"errors"
	"time"
)

var ErrCodeExpired = errors.New("verification code expired")

const (
	codeLength   = 8
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// CodeTTL is how long a verification code stays valid after it was
	// issued (or re-issued).
	CodeTTL = 120 * time.Second
)

// CodeIssuer generates short-lived verification codes for patient email
// confirmation. Codes are single-use: successful verification advances
// the appointment out of the awaiting-code pool.
type CodeIssuer struct{}

func NewCodeIssuer() *CodeIssuer {
	return &CodeIssuer{}
}

// Generate produces an 8-character code drawn uniformly from 0-9A-Z.
// No collision avoidance beyond randomness; codes are scoped to one
// appointment record and expire quickly.
func (i *CodeIssuer) Generate() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	code := make([]byte, codeLength)
	for n, b := range buf {
		code[n] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(code), nil
}

// IsExpired reports whether more than CodeTTL elapsed between issuedAt
// and now. The absolute difference is used so a slightly skewed client
// clock cannot produce a negative window.
func (i *CodeIssuer) IsExpired(issuedAt, now time.Time) bool {
	diff := now.Sub(issuedAt)
	if diff < 0 {
		diff = -diff
	}
	return diff > CodeTTL
}
