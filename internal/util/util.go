package util

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// validationCodeAlphabet excludes ambiguous characters (0/O, 1/I/L) since
// the code is read aloud or typed at handoff.
const validationCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// GenerateValidationCode returns a random code of the given length from the
// unambiguous alphabet.
func GenerateValidationCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("validation code length must be positive")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	for i, b := range buf {
		buf[i] = validationCodeAlphabet[int(b)%len(validationCodeAlphabet)]
	}

	return string(buf), nil
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
