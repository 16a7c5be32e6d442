// Package dataset reads and writes the plain-text integer datasets fed to the benchmark.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultCount is the number of keys a dataset is expected to hold.
	DefaultCount = 32500
	// DefaultTrials is the number of repeated benchmark trials.
	DefaultTrials = 1000
)

var (
	// ErrShortDataset is returned together with the keys read when the input
	// held fewer keys than expected. Callers treat it as a warning.
	ErrShortDataset = errors.New("dataset holds fewer keys than expected")
	// ErrTooManyKeys means the input held more keys than expected.
	ErrTooManyKeys = errors.New("dataset holds more keys than expected")
)

// Load reads whitespace-separated integers from r. When expected is positive the
// number of keys is checked against it.
func Load(r io.Reader, expected int) ([]int, error) {
	capHint := expected
	if capHint <= 0 {
		capHint = 1024
	}
	keys := make([]int, 0, capHint)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if expected > 0 && len(keys) == expected {
			return nil, errors.Wrapf(ErrTooManyKeys, "expected %d", expected)
		}
		k, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "key %d", len(keys))
		}
		keys = append(keys, k)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading dataset")
	}

	if expected > 0 && len(keys) < expected {
		return keys, errors.Wrapf(ErrShortDataset, "got %d of %d", len(keys), expected)
	}
	return keys, nil
}

// LoadFile opens fname and calls Load on it.
func LoadFile(fname string, expected int) ([]int, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrap(err, "could not open dataset")
	}
	defer f.Close()
	return Load(f, expected)
}

// Generate returns n pseudo-random keys in [0, max) drawn from seed.
func Generate(n, max int, seed int64) []int {
	rnd := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rnd.Intn(max)
	}
	return keys
}

// Write writes keys one per line.
func Write(out io.Writer, keys []int) error {
	w := bufio.NewWriter(out)
	for _, k := range keys {
		if _, err := fmt.Fprintln(w, k); err != nil {
			return errors.Wrap(err, "writing dataset")
		}
	}
	return errors.Wrap(w.Flush(), "writing dataset")
}
