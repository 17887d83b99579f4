// Package assets embeds the default word lists, one file per word length.
package assets

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed words_*.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded words of the given length.
// A length with no embedded file yields an empty list.
func WordList(length int) ([]string, error) {
	words, err := readLines(fmt.Sprintf("words_%d.txt", length))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return words, err
}
