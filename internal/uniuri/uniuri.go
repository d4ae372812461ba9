package uniuri

import (
	"crypto/rand"
	"fmt"
)

// DigitChars are the characters used by Digits.
var DigitChars = []byte("0123456789")

const (
	byteRange = 256
	maxBufLen = 2048
)

// Digits returns a random string of length decimal digits. Leading zeros are kept.
func Digits(length int) string {
	return newLenChars(length, DigitChars)
}

// newLenChars returns a random string of length characters taken from chars.
// chars must hold between 2 and 256 characters.
func newLenChars(length int, chars []byte) string {
	out, err := read(length, chars)
	if err != nil {
		panic("uniuri: " + err.Error())
	}

	return string(out)
}

func read(length int, chars []byte) ([]byte, error) {
	if length <= 0 {
		return nil, nil
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		return nil, fmt.Errorf("wrong charset length %d", clen)
	}

	// bytes above limit would favour the first characters of chars
	limit := byteRange - (byteRange % clen)

	bufLen := min(length+length/2+1, maxBufLen)
	buf := make([]byte, bufLen)
	out := make([]byte, 0, length)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("error reading random bytes: %w", err)
		}

		for _, rb := range buf {
			if int(rb) >= limit {
				continue
			}

			out = append(out, chars[int(rb)%clen])
			if len(out) == length {
				break
			}
		}
	}

	return out, nil
}
