// Package daily picks a deterministic secret per calendar day and word length,
// so every player starting a daily game on the same date gets the same word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"time"
)

// Indexed is a word list that can be addressed by position.
type Indexed interface {
	Count(length int) int
	At(length, i int) (string, error)
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index using HMAC(salt, YYYY-MM-DD/length) % n.
func WordIndex(date time.Time, salt string, length, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date) + "/" + strconv.Itoa(length)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Source is a game.WordSource that always yields the puzzle of one day.
type Source struct {
	Words Indexed
	Date  time.Time
	Salt  string
}

// Random returns the day's word for the length. The name satisfies
// game.WordSource; the choice is deterministic.
func (s Source) Random(length int) (string, error) {
	return s.Words.At(length, WordIndex(s.Date, s.Salt, length, s.Words.Count(length)))
}
