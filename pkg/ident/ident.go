// Package ident generates the two public identifiers every guest carries:
// a URL slug for the personalized invitation link and a short QR token
// used as the check-in key.
package ident

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	// QRAlphabet is the character set QR tokens are drawn from.
	QRAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// DefaultQRLength keeps tokens short enough to type in by hand.
	DefaultQRLength = 5

	// MaxSlugLength is the width of the slug column.
	MaxSlugLength = 255

	slugSuffixLen = 8
	maxSlugBase   = MaxSlugLength - slugSuffixLen - 1
	emptySlugBase = "guest"
)

var (
	slugStrip      = regexp.MustCompile(`[^a-z0-9\s]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

// SlugBase returns the deterministic, human-readable part of a slug, cut
// short enough that the suffixed slug fits in MaxSlugLength.
func SlugBase(name string) string {
	base := strings.TrimSpace(strings.ToLower(name))
	base = slugStrip.ReplaceAllString(base, "")
	base = strings.TrimSpace(base)
	base = slugWhitespace.ReplaceAllString(base, "-")
	if len(base) > maxSlugBase {
		base = strings.TrimRight(base[:maxSlugBase], "-")
	}
	return base
}

// GenerateSlug derives a slug from a guest name and appends the first 8 hex
// characters of a random UUID, e.g. "Jane Doe" -> "jane-doe-3f2a9c1b".
func GenerateSlug(name string) string {
	base := SlugBase(name)
	if base == "" {
		base = emptySlugBase
	}
	return base + "-" + uuid.New().String()[:slugSuffixLen]
}

// GenerateQRString returns a token of DefaultQRLength characters.
func GenerateQRString() (string, error) {
	return GenerateQRStringN(DefaultQRLength)
}

// GenerateQRStringN draws n characters uniformly from QRAlphabet.
func GenerateQRStringN(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("qr length must be positive, got %d", n)
	}
	max := big.NewInt(int64(len(QRAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate qr string: %w", err)
		}
		b[i] = QRAlphabet[idx.Int64()]
	}
	return string(b), nil
}

// NormalizeQRString cleans up an operator-typed code before lookup.
func NormalizeQRString(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsValidQRString reports whether s has the shape of a token of length n.
func IsValidQRString(s string, n int) bool {
	return len(s) == n && HasQRAlphabet(s)
}

// HasQRAlphabet reports whether s is non-empty and drawn from QRAlphabet.
func HasQRAlphabet(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(QRAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
