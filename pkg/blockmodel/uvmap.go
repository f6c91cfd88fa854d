package blockmodel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// CommentPrefix starts a comment line in a UV map file.
const CommentPrefix = "#"

// ParseError describes a coordinate line that could not be read. The record
// it belongs to is dropped, the rest of the file is still parsed.
type ParseError struct {
	Line int
	Name string
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uv map line %d (%s): %q: %v", e.Line, e.Name, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errMissingCoord = errors.New("expected two coordinates")
	errShortRecord  = errors.New("record cut short by the next block name")
)

// UVMap is the result of parsing a UV map file: the complete records in file
// order plus any warnings collected along the way.
type UVMap struct {
	Records  []UVRecord
	Warnings []*ParseError
}

// Err joins all warnings into one error, or returns nil when there are none.
func (m *UVMap) Err() error {
	if m == nil || len(m.Warnings) == 0 {
		return nil
	}
	errs := make([]error, len(m.Warnings))
	for i, w := range m.Warnings {
		errs[i] = w
	}
	return errors.Join(errs...)
}

// Lookup returns the last record with the given name.
func (m *UVMap) Lookup(name string) (UVRecord, bool) {
	for i := len(m.Records) - 1; i >= 0; i-- {
		if m.Records[i].Name == name {
			return m.Records[i], true
		}
	}
	return UVRecord{}, false
}

// ParseUVMap reads a UV map: a block name line (accepted only when known
// reports true) followed by six "<u> <v>" lines in face order XPOS..ZNEG.
// Blank lines and '#' comments are skipped anywhere. Unknown names are
// ignored and a record cut short by end of input is discarded. A known name
// showing up before the six lines are complete drops the open record with a
// warning and starts a new one; with a nil known every line inside a record
// is read as a coordinate. Only read errors are returned; malformed
// coordinates end up in UVMap.Warnings.
func ParseUVMap(r io.Reader, known func(name string) bool) (*UVMap, error) {
	result := &UVMap{}

	var (
		collecting bool
		poisoned   bool
		count      int
		current    UVRecord
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		if collecting && known != nil && known(line) {
			result.Warnings = append(result.Warnings, &ParseError{
				Line: lineNo,
				Name: current.Name,
				Text: line,
				Err:  errShortRecord,
			})
			collecting = false
		}

		if !collecting {
			if known != nil && !known(line) {
				continue
			}
			current = UVRecord{Name: line, Line: lineNo}
			collecting = true
			poisoned = false
			count = 0
			continue
		}

		uv, err := parseCoordLine(line)
		if err != nil {
			result.Warnings = append(result.Warnings, &ParseError{
				Line: lineNo,
				Name: current.Name,
				Text: line,
				Err:  err,
			})
			poisoned = true
		} else {
			current.Offsets[count] = uv
		}
		count++

		if count == NumDirections {
			if !poisoned {
				result.Records = append(result.Records, current)
			}
			collecting = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read uv map: %w", err)
	}

	return result, nil
}

func parseCoordLine(line string) (mgl32.Vec2, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return mgl32.Vec2{}, errMissingCoord
	}
	u, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return mgl32.Vec2{}, err
	}
	v, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return mgl32.Vec2{}, err
	}
	return mgl32.Vec2{float32(u), float32(v)}, nil
}
