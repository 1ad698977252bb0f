package figfile

import (
	"encoding/csv"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/framechart/pkg/errors"
)

// ReadColumns reads two numeric columns, by header name, from a CSV file.
// Empty column names select the first and second columns.
func ReadColumns(path, xcol, ycol string) ([]float64, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	xs, ys, err := DecodeColumns(f, xcol, ycol)
	if err != nil {
		return nil, nil, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return xs, ys, nil
}

// DecodeColumns is ReadColumns over an arbitrary reader.
func DecodeColumns(r io.Reader, xcol, ycol string) ([]float64, []float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, errors.New(errors.ErrCodeEmptyData, "missing header row")
	}
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "header")
	}
	xi, err := column(header, xcol, 0)
	if err != nil {
		return nil, nil, err
	}
	yi, err := column(header, ycol, 1)
	if err != nil {
		return nil, nil, err
	}

	var xs, ys []float64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d", line)
		}
		x, err := parseCell(rec, xi, line)
		if err != nil {
			return nil, nil, err
		}
		y, err := parseCell(rec, yi, line)
		if err != nil {
			return nil, nil, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}

func column(header []string, name string, fallback int) (int, error) {
	if name == "" {
		if fallback >= len(header) {
			return 0, errors.New(errors.ErrCodeInvalidFormat, "need at least %d columns, have %d", fallback+1, len(header))
		}
		return fallback, nil
	}
	i := slices.IndexFunc(header, func(h string) bool { return strings.EqualFold(strings.TrimSpace(h), name) })
	if i < 0 {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "no column %q in header %v", name, header)
	}
	return i, nil
}

func parseCell(rec []string, i, line int) (float64, error) {
	if i >= len(rec) {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "line %d: missing column %d", line, i+1)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidData, err, "line %d", line)
	}
	return v, nil
}
