package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/figfile"
	"github.com/matzehuels/framechart/pkg/figure"
)

// Fit builds the document's figure and resolves it.
func Fit(doc *figfile.Document) (figure.Layout, error) {
	f, err := doc.Figure()
	if err != nil {
		return figure.Layout{}, err
	}
	return f.Fit()
}

// MarshalLayout encodes a layout for caching and JSON export.
func MarshalLayout(l figure.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return data, nil
}

// UnmarshalLayout decodes a layout written by MarshalLayout.
func UnmarshalLayout(data []byte) (figure.Layout, error) {
	var l figure.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return figure.Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}
	return l, nil
}
