package cli

import (
	"crypto/rand"
	"math/big"
)

const (
	minTemporaryPasswordLength = 12
	upperAlphabet              = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet              = "abcdefghijkmnopqrstuvwxyz"
	digitAlphabet              = "23456789"
	temporaryPasswordAlphabet  = upperAlphabet + lowerAlphabet + digitAlphabet
)

// generateTemporaryPassword returns a password that always passes the
// account password rules: at least one upper-case, lower-case and digit
// character, with look-alike characters left out.
func generateTemporaryPassword(length int) (string, error) {
	if length < minTemporaryPasswordLength {
		length = minTemporaryPasswordLength
	}

	value := make([]byte, 0, length)
	for _, alphabet := range []string{upperAlphabet, lowerAlphabet, digitAlphabet} {
		char, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		value = append(value, char)
	}
	for len(value) < length {
		char, err := randomChar(temporaryPasswordAlphabet)
		if err != nil {
			return "", err
		}
		value = append(value, char)
	}

	// shuffle so the guaranteed classes are not always in front
	for index := len(value) - 1; index > 0; index-- {
		swap, err := rand.Int(rand.Reader, big.NewInt(int64(index+1)))
		if err != nil {
			return "", err
		}
		value[index], value[swap.Int64()] = value[swap.Int64()], value[index]
	}
	return string(value), nil
}

func randomChar(alphabet string) (byte, error) {
	position, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, err
	}
	return alphabet[position.Int64()], nil
}
