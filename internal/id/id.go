package id

import "crypto/rand"

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a random 16-character lowercase alphanumeric ID.
func GenerateID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = alphabet[b[i]%byte(len(alphabet))]
	}
	return string(b)
}
