package utils

import (
	"math/rand"
	"strconv"
)

// GenerateRandomToken produces an alphanumeric token for password resets.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, length)
	for i := range token {
		token[i] = charset[rand.Intn(len(charset))]
	}
	return string(token)
}

// GenerateNumericCode produces a fixed-length digit code for MFA emails.
func GenerateNumericCode(length int) string {
	code := ""
	for i := 0; i < length; i++ {
		code += strconv.Itoa(rand.Intn(10))
	}
	return code
}
