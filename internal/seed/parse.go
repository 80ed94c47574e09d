package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sparse-life/internal/core"
)

var (
	// ErrSyntax is returned for malformed pattern files.
	ErrSyntax = errors.New("seed: pattern syntax error")
	// ErrRule is returned for RLE patterns declaring a rule other than B3/S23.
	ErrRule = errors.New("seed: unsupported rule")
)

// Load reads a pattern file. Files ending in .rle are parsed as RLE, anything
// else as plaintext.
func Load(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".rle") {
		return ParseRLE(f)
	}
	return ParsePlaintext(f)
}

// ParsePlaintext reads the plaintext (.cells) format: lines starting with '!'
// are comments, 'O' or '*' marks a live cell and '.' a dead one. Short rows
// are padded with dead cells.
func ParsePlaintext(r io.Reader) (*core.Grid, error) {
	var rows [][]uint8
	width := 0
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(text, "!") {
			continue
		}
		row := make([]uint8, len(text))
		for i, ch := range []byte(text) {
			switch ch {
			case 'O', 'o', '*':
				row[i] = 1
			case '.', ' ':
			default:
				return nil, fmt.Errorf("line %d: unexpected %q: %w", line, ch, ErrSyntax)
			}
		}
		width = max(width, len(row))
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]uint8, width-len(row))...)
		}
	}
	return core.GridFromRows(rows)
}

// ParseRLE reads the run-length encoded pattern format. The header line
// "x = W, y = H[, rule = B3/S23]" sizes the grid; the body uses 'b' for dead,
// 'o' for live and '$' for end of row, with optional repeat counts, and ends
// at '!'.
func ParseRLE(r io.Reader) (*core.Grid, error) {
	sc := bufio.NewScanner(r)
	var (
		g    *core.Grid
		body strings.Builder
	)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if g == nil {
			w, h, err := parseRLEHeader(text)
			if err != nil {
				return nil, err
			}
			if g, err = core.NewGrid(w, h); err != nil {
				return nil, err
			}
			continue
		}
		body.WriteString(text)
		if strings.Contains(text, "!") {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("missing header: %w", ErrSyntax)
	}
	if err := decodeRLE(g, body.String()); err != nil {
		return nil, err
	}
	return g, nil
}

func parseRLEHeader(line string) (w, h int, err error) {
	seen := 0
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return 0, 0, fmt.Errorf("header field %q: %w", field, ErrSyntax)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "x", "y":
			n, convErr := strconv.Atoi(value)
			if convErr != nil || n < 0 {
				return 0, 0, fmt.Errorf("header %s = %q: %w", key, value, ErrSyntax)
			}
			if key == "x" {
				w = n
			} else {
				h = n
			}
			seen++
		case "rule":
			if !isConway(value) {
				return 0, 0, fmt.Errorf("rule %q: %w", value, ErrRule)
			}
		}
	}
	if seen != 2 {
		return 0, 0, fmt.Errorf("header %q lacks x or y: %w", line, ErrSyntax)
	}
	return w, h, nil
}

func isConway(rule string) bool {
	switch strings.ToUpper(strings.ReplaceAll(rule, " ", "")) {
	case "B3/S23", "23/3":
		return true
	}
	return false
}

func decodeRLE(g *core.Grid, body string) error {
	x, y, count := 0, 0, 0
	for _, ch := range body {
		switch {
		case ch >= '0' && ch <= '9':
			count = count*10 + int(ch-'0')
			if count > core.MaxCells {
				return fmt.Errorf("run count exceeds %d: %w", core.MaxCells, ErrSyntax)
			}
			continue
		case ch == '!':
			return nil
		}
		run := max(count, 1)
		count = 0
		switch ch {
		case 'b':
			x += run
		case 'o':
			if run > g.W-x || y >= g.H {
				return fmt.Errorf("run at (%d,%d) exceeds %dx%d: %w", x, y, g.W, g.H, ErrSyntax)
			}
			for i := 0; i < run; i++ {
				g.Set(x+i, y, true)
			}
			x += run
		case '$':
			y += run
			x = 0
		case ' ', '\t':
		default:
			return fmt.Errorf("unexpected %q: %w", ch, ErrSyntax)
		}
	}
	return fmt.Errorf("missing terminating '!': %w", ErrSyntax)
}
