package utils

import (
	"crypto/rand"
	"log"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DocumentIDLength is the length of catalog document ids.
const DocumentIDLength = 20

// UserIDLength is the length of principal ids issued by the identity provider.
const UserIDLength = 28

// NewDocumentID generates a 20-character alphanumeric document id.
func NewDocumentID() string {
	buf := make([]byte, DocumentIDLength)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("failed to generate document id: %v", err)
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf)
}

// ValidDocumentID reports whether s is a well-formed document id.
func ValidDocumentID(s string) bool {
	return validAlnum(s, DocumentIDLength)
}

// ValidUserID reports whether s is a well-formed principal id.
func ValidUserID(s string) bool {
	return validAlnum(s, UserIDLength)
}

func validAlnum(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
