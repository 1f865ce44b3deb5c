package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/ChizhovVadim/cellclass/pkg/shape"
	"github.com/pkg/errors"
)

// ParseContours reads contours in the text format: one "x y" (or "x,y") point per
// line, blank lines between objects, '#' comment lines.
func ParseContours(r io.Reader) ([]shape.Contour, error) {
	var result []shape.Contour
	var current shape.Contour
	var lineNumber int

	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		var line = strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line == "" {
			if len(current) > 0 {
				result = append(result, current)
				current = nil
			}
			continue
		}
		var p, err = parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %v", lineNumber)
		}
		current = append(current, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		result = append(result, current)
	}
	return result, nil
}

func parsePoint(line string) (shape.Point, error) {
	var fields = strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return shape.Point{}, errors.Errorf("bad point %q", line)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return shape.Point{}, err
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return shape.Point{}, err
	}
	return shape.Point{X: x, Y: y}, nil
}

func WriteContours(w io.Writer, contours []shape.Contour) error {
	var bw = bufio.NewWriter(w)
	for i, c := range contours {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		for _, p := range c {
			fmt.Fprintf(bw, "%d %d\n", p.X, p.Y)
		}
	}
	return bw.Flush()
}

// LoadObjects reads every object of a contour file.
func LoadObjects(path string) ([]shape.Object, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	contours, err := ParseContours(file)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %v", path)
	}
	var result = make([]shape.Object, len(contours))
	for i, c := range contours {
		result[i] = shape.NewObject(c)
	}
	return result, nil
}
