package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Scanner reads a UCD file line by line, skipping blank lines and
// comment-only lines, and produces one Token per data line.
//
//	sc, _ := ucdparse.New(r)
//	for sc.Next() {
//	    token := sc.Token()
//	    …
//	}
//	if err := sc.Err(); err != nil {
//	    …
//	}
type Scanner struct {
	lines *bufio.Scanner
	token *Token
	line  int
	err   error
}

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of a UCD file and calls callback
// f on it.
func Parse(r io.Reader, f func(*Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token())
	}
	return sc.Err()
}

// Next advances the scanner to the next data line.
func (sc *Scanner) Next() bool {
	if sc.err != nil {
		return false
	}
	for sc.lines.Scan() {
		sc.line++
		text := sc.lines.Text()
		if isBlank(text) {
			continue
		}
		token, err := parseLine(text, sc.line)
		if err != nil {
			sc.err = err
			return false
		}
		sc.token = token
		return true
	}
	sc.err = sc.lines.Err()
	return false
}

// Token returns the token for the data line the scanner points at.
func (sc *Scanner) Token() *Token {
	return sc.token
}

// Err returns the error that stopped the scanner, if any.
func (sc *Scanner) Err() error {
	return sc.err
}

func isBlank(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// parseLine splits "XXXX[..YYYY] ; field0 ; field1 … # comment".
func parseLine(text string, lineNo int) (*Token, error) {
	token := &Token{LineNo: lineNo}
	if pos := strings.IndexByte(text, '#'); pos >= 0 {
		token.Comment = strings.TrimSpace(text[pos+1:])
		text = text[:pos]
	}
	parts := strings.Split(text, ";")
	rng := strings.TrimSpace(parts[0])
	from, to, err := parseRange(rng)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo, err)
	}
	token.From, token.To = from, to
	for _, field := range parts[1:] {
		token.Fields = append(token.Fields, strings.TrimSpace(field))
	}
	return token, nil
}

func parseRange(rng string) (from, to rune, err error) {
	lo := rng
	hi := rng
	if pos := strings.Index(rng, ".."); pos >= 0 {
		lo, hi = rng[:pos], rng[pos+2:]
	}
	n, err := strconv.ParseInt(lo, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("hex decoding error: %w", err)
	}
	from = rune(n)
	if n, err = strconv.ParseInt(hi, 16, 32); err != nil {
		return 0, 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return from, rune(n), nil
}
