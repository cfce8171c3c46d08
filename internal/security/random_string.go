package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters uniformly from alphabet using the
// crypto/rand source. Sampling one rand.Int per character stays unbiased
// even when the alphabet size is not a power of two.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		pick, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[pick.Int64()]
	}

	return string(buf), nil
}
