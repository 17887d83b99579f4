// internal/words/words.go
//
// Word catalog for the game engine: a static in-memory table keyed by word length.
//
// Responsibilities:
//   - Build the catalog from the embedded per-length lists (assets/words_N.txt).
//   - Optionally override lengths from a file named by WORDS_FILE:
//       *.yaml / *.yml  →  lengths: {3: [...], 4: [...]}
//       anything else   →  one word per line, bucketed by length
//   - Supply Random (crypto/rand), At, Contains, Lengths and Stats.
//
// Constraints:
//   • Words are lowercase a–z; entries of the wrong length for their bucket are dropped.
//   • Duplicates are removed, first occurrence wins.
//   • A Catalog is immutable once built and safe for concurrent use.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordlelab/assets"
	"github.com/robalobadob/wordlelab/internal/game"
)

// ErrNoWords is returned when the catalog has nothing of the requested length.
var ErrNoWords = errors.New("words: no words for length")

// Catalog is a set of candidate secrets grouped by length.
type Catalog struct {
	byLength map[int][]string
	all      map[string]struct{}
}

// New builds a catalog from per-length lists.
func New(lists map[int][]string) *Catalog {
	c := &Catalog{
		byLength: make(map[int][]string, len(lists)),
		all:      make(map[string]struct{}),
	}
	for n, list := range lists {
		seen := make(map[string]struct{}, len(list))
		var out []string
		for _, w := range list {
			w = strings.TrimSpace(strings.ToLower(w))
			if len(w) != n || !isAlpha(w) {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			c.all[w] = struct{}{}
			out = append(out, w)
		}
		if len(out) > 0 {
			c.byLength[n] = out
		}
	}
	return c
}

// Load builds the embedded catalog for every supported length and applies the
// override file at path, if any. Lengths the file names replace the embedded lists.
func Load(path string) (*Catalog, error) {
	lists := make(map[int][]string, len(game.SupportedLengths))
	for _, n := range game.SupportedLengths {
		l, err := assets.WordList(n)
		if err != nil {
			return nil, fmt.Errorf("embedded %d-letter list: %w", n, err)
		}
		lists[n] = l
	}

	if path != "" {
		override, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("words file %s: %w", path, err)
		}
		for n, l := range override {
			lists[n] = l
		}
	}

	c := New(lists)
	if len(c.byLength) == 0 {
		return nil, errors.New("words: catalog is empty")
	}
	return c, nil
}

// yamlFile is the on-disk shape of a YAML catalog.
type yamlFile struct {
	Lengths map[int][]string `yaml:"lengths"`
}

// readFile loads an override file, either YAML or plain text.
func readFile(path string) (map[int][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var y yamlFile
		if err := yaml.Unmarshal(b, &y); err != nil {
			return nil, err
		}
		return y.Lengths, nil
	default:
		return readWordFile(path)
	}
}

// readWordFile loads one word per line and buckets the words by length.
// Blank lines and # comments are skipped.
func readWordFile(path string) (map[int][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[int][]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") || !isAlpha(w) {
			continue
		}
		out[len(w)] = append(out[len(w)], w)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Random returns a cryptographically random word of the given length.
func (c *Catalog) Random(length int) (string, error) {
	list := c.byLength[length]
	if len(list) == 0 {
		return "", fmt.Errorf("%w %d", ErrNoWords, length)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return "", fmt.Errorf("random index: %w", err)
	}
	return list[n.Int64()], nil
}

// At returns the i-th word of the given length, wrapping i into range.
func (c *Catalog) At(length, i int) (string, error) {
	list := c.byLength[length]
	if len(list) == 0 {
		return "", fmt.Errorf("%w %d", ErrNoWords, length)
	}
	i %= len(list)
	if i < 0 {
		i += len(list)
	}
	return list[i], nil
}

// Count returns how many words of the given length are loaded.
func (c *Catalog) Count(length int) int { return len(c.byLength[length]) }

// Contains reports whether w is in the catalog (any length).
func (c *Catalog) Contains(w string) bool {
	_, ok := c.all[strings.ToLower(w)]
	return ok
}

// Lengths returns the lengths that have at least one word, ascending.
func (c *Catalog) Lengths() []int {
	out := make([]int, 0, len(c.byLength))
	for n := range c.byLength {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Stats returns the word count per length.
func (c *Catalog) Stats() map[int]int {
	out := make(map[int]int, len(c.byLength))
	for n, l := range c.byLength {
		out[n] = len(l)
	}
	return out
}
