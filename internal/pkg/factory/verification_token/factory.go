package verification_token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/shopspring/decimal"
)

// Signer produces the tamper-evident token printed into the receipt QR code:
// hex(HMAC-SHA256(secret, documentNumber|bookingRef|total with 2 decimals)).
type Signer struct {
	secret []byte
}

func New(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Sign(documentNumber string, bookingRef *string, total decimal.Decimal) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload(documentNumber, bookingRef, total)))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Verify(documentNumber string, bookingRef *string, total decimal.Decimal, token string) bool {
	expected := s.Sign(documentNumber, bookingRef, total)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(token))))
}

func payload(documentNumber string, bookingRef *string, total decimal.Decimal) string {
	ref := ""
	if bookingRef != nil {
		ref = *bookingRef
	}
	return documentNumber + "|" + ref + "|" + total.StringFixed(2)
}
