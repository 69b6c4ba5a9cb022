package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/nntour/tsp"
)

const (
	// HeaderLines is the number of leading lines skipped before coordinates.
	HeaderLines = 5

	// Terminator ends the coordinate section.
	Terminator = "EOF"
)

// ReadCities parses an instance from r. Cities keep their input order, so
// the first record becomes position 0, the tour origin.
func ReadCities(r io.Reader) ([]tsp.City, error) {
	sc := bufio.NewScanner(r)

	var line int
	for ; line < HeaderLines; line++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %d of %d lines", ErrTruncatedHeader, line, HeaderLines)
		}
	}

	var cities []tsp.City
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == Terminator {
			break
		}
		if text == "" {
			continue
		}
		c, err := parseRecord(text)
		if err != nil {
			err.Line = line
			return nil, err
		}
		cities = append(cities, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, ErrNoCities
	}

	return cities, nil
}

// ReadCitiesFile opens path and delegates to ReadCities.
func ReadCitiesFile(path string) ([]tsp.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cities, err := ReadCities(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cities, nil
}

// parseRecord reads "id x y"; trailing fields are ignored.
func parseRecord(text string) (tsp.City, *RecordError) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return tsp.City{}, &RecordError{Text: text}
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tsp.City{}, &RecordError{Text: text, Err: err}
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tsp.City{}, &RecordError{Text: text, Err: err}
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tsp.City{}, &RecordError{Text: text, Err: err}
	}

	return tsp.City{ID: id, X: x, Y: y}, nil
}
