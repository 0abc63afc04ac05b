package tsplib

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/glsearch/gls"
)

// Header keywords recognized when sniffing and parsing TSPLIB input.
const (
	keyName           = "NAME"
	keyType           = "TYPE"
	keyComment        = "COMMENT"
	keyDimension      = "DIMENSION"
	keyEdgeWeightType = "EDGE_WEIGHT_TYPE"
	keyNodeCoords     = "NODE_COORD_SECTION"
	keyEOF            = "EOF"
)

// Parse reads a TSPLIB EUC_2D instance.
//
// Complexity: O(lines) time, O(DIMENSION) space.
func Parse(r io.Reader) (*Instance, error) {
	var (
		sc        = bufio.NewScanner(r)
		in        = &Instance{}
		dim       = -1
		inCoords  bool
		seen      []bool
		count     int
		lineNo    int
		line      string
		key, val  string
		fields    []string
		id        int
		x, y      float64
		err, errY error
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == keyEOF {
			break
		}

		if inCoords {
			fields = strings.Fields(line)
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: want \"<id> <x> <y>\"", ErrMalformedLine, lineNo)
			}
			id, err = strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: node id %q", ErrMalformedLine, lineNo, fields[0])
			}
			x, err = strconv.ParseFloat(fields[1], 64)
			y, errY = strconv.ParseFloat(fields[2], 64)
			if err != nil || errY != nil {
				return nil, fmt.Errorf("%w: line %d: coordinates", ErrMalformedLine, lineNo)
			}
			if id < 1 || id > dim || seen[id-1] {
				return nil, fmt.Errorf("%w: line %d: node id %d", ErrBadDimension, lineNo, id)
			}
			seen[id-1] = true
			in.Cities[id-1] = gls.City{X: x, Y: y}
			count++
			continue
		}

		key, val = splitHeader(line)
		switch key {
		case keyName:
			in.Name = val
		case keyComment:
			in.Comment = val
		case keyType:
			if val != "TSP" {
				return nil, fmt.Errorf("%w: TYPE %s", ErrUnsupportedFormat, val)
			}
		case keyEdgeWeightType:
			if val != "EUC_2D" {
				return nil, fmt.Errorf("%w: EDGE_WEIGHT_TYPE %s", ErrUnsupportedFormat, val)
			}
		case keyDimension:
			dim, err = strconv.Atoi(val)
			if err != nil || dim <= 0 {
				return nil, fmt.Errorf("%w: line %d: DIMENSION %q", ErrBadDimension, lineNo, val)
			}
		case keyNodeCoords:
			if dim <= 0 {
				return nil, fmt.Errorf("%w: %s before DIMENSION", ErrBadDimension, keyNodeCoords)
			}
			in.Cities = make([]gls.City, dim)
			seen = make([]bool, dim)
			inCoords = true
		default:
			if strings.HasSuffix(key, "_SECTION") {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, key)
			}
			// Unknown header keys are ignored.
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if !inCoords {
		return nil, ErrEmptyInstance
	}
	if count != dim {
		return nil, fmt.Errorf("%w: %d of %d nodes", ErrBadDimension, count, dim)
	}
	return in, nil
}

// splitHeader splits "KEY: value" / "KEY : value" / "KEY" into its parts.
func splitHeader(line string) (key, val string) {
	if i := strings.IndexByte(line, ':'); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return line, ""
}

// ParseXY reads one "<x> <y>" pair per line. Blank lines and '#' comments
// are skipped.
func ParseXY(r io.Reader) (*Instance, error) {
	var (
		sc        = bufio.NewScanner(r)
		in        = &Instance{}
		lineNo    int
		line      string
		fields    []string
		x, y      float64
		err, errY error
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields = strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want \"<x> <y>\"", ErrMalformedLine, lineNo)
		}
		x, err = strconv.ParseFloat(fields[0], 64)
		y, errY = strconv.ParseFloat(fields[1], 64)
		if err != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: coordinates", ErrMalformedLine, lineNo)
		}
		in.Cities = append(in.Cities, gls.City{X: x, Y: y})
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(in.Cities) == 0 {
		return nil, ErrEmptyInstance
	}
	return in, nil
}

// Load reads path and parses it as TSPLIB or XY depending on its content.
// XY instances are named after the file.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if looksLikeTSPLIB(data) {
		return Parse(bytes.NewReader(data))
	}
	in, err := ParseXY(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	in.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return in, nil
}

// looksLikeTSPLIB reports whether the first meaningful line starts with a
// TSPLIB header keyword.
func looksLikeTSPLIB(data []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	var (
		line string
		key  string
	)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, _ = splitHeader(line)
		switch key {
		case keyName, keyType, keyComment, keyDimension, keyEdgeWeightType, keyNodeCoords:
			return true
		}
		return false
	}
	return false
}
