package cityio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/satsp/tsp"
)

// ErrMalformedInput is returned (wrapped with the token position) for any
// syntactically invalid input.
var ErrMalformedInput = errors.New("cityio: malformed input")

// maxPrealloc bounds the capacity reserved from the declared city count.
const maxPrealloc = 1024

// tokenizer yields whitespace-separated tokens and counts them for diagnostics.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

// next returns the next token or io.ErrUnexpectedEOF when the input is exhausted.
func (t *tokenizer) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	t.pos++
	return t.sc.Text(), nil
}

func (t *tokenizer) nextInt(what string) (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, t.fail(what, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s): %q is not an integer", ErrMalformedInput, t.pos, what, tok)
	}
	return v, nil
}

func (t *tokenizer) fail(what string, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of input after token %d, expected %s", ErrMalformedInput, t.pos, what)
	}
	return fmt.Errorf("cityio: read %s: %w", what, err)
}

// Parse reads the city count and the city records from r.
//
// Errors:
//   - ErrMalformedInput for syntax problems (wrapped with the token position).
//   - tsp.ErrEmptyInput when N == 0; tsp.ErrDuplicateCity for repeated names.
//   - Any read error from r.
func Parse(r io.Reader) ([]tsp.City, error) {
	tz := newTokenizer(r)

	n, err := tz.nextInt("city count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative city count %d", ErrMalformedInput, n)
	}

	// n is untrusted until the records are read; truncation is reported below.
	cities := make([]tsp.City, 0, min(n, maxPrealloc))
	var (
		i    int
		name string
		x, y int
	)
	for i = 0; i < n; i++ {
		if name, err = tz.next(); err != nil {
			return nil, tz.fail(fmt.Sprintf("name of city %d", i+1), err)
		}
		if x, err = tz.nextInt(fmt.Sprintf("x of %q", name)); err != nil {
			return nil, err
		}
		if y, err = tz.nextInt(fmt.Sprintf("y of %q", name)); err != nil {
			return nil, err
		}
		cities = append(cities, tsp.City{Name: name, X: x, Y: y})
	}

	if extra, err := tz.next(); err == nil {
		return nil, fmt.Errorf("%w: unexpected trailing token %d %q after %d cities", ErrMalformedInput, tz.pos, extra, n)
	} else if !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("cityio: read: %w", err)
	}

	if err = tsp.ValidateCities(cities); err != nil {
		return nil, err
	}

	return cities, nil
}
