package instance

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadIntegers reads a text file with one integer per line, skipping empty
// and whitespace-only lines. Returns ErrNotFound if the file is missing and
// ErrBadInteger on the first line that fails to parse.
func ReadIntegers(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, err
	}
	defer f.Close()

	var out []int
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		v, convErr := strconv.Atoi(s)
		if convErr != nil {
			return nil, fmt.Errorf("%w: %s line %d: %q", ErrBadInteger, path, line, s)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
