package pipeline

import (
	"github.com/matzehuels/framechart/pkg/cache"
	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/figfile"
)

// Load reads the document named by opts, applies the size overrides and
// inlines CSV data. It returns the document together with the hash of its
// canonical encoding, which changes whenever anything affecting the figure
// does.
func Load(opts Options) (*figfile.Document, string, error) {
	var (
		doc *figfile.Document
		err error
	)
	if opts.Document != "" {
		doc, err = figfile.Parse([]byte(opts.Document))
		if err == nil && referencesCSV(doc) {
			return nil, "", errors.New(errors.ErrCodeInvalidInput, "inline documents cannot reference CSV files")
		}
	} else {
		doc, err = figfile.Load(opts.Path)
	}
	if err != nil {
		return nil, "", err
	}

	if opts.Width > 0 {
		doc.Width = opts.Width
	}
	if opts.Height > 0 {
		doc.Height = opts.Height
	}
	if err := doc.Inline(); err != nil {
		return nil, "", err
	}

	canonical, err := doc.Encode()
	if err != nil {
		return nil, "", err
	}
	return doc, cache.Hash(canonical), nil
}

// referencesCSV reports whether any chart reads its data from a file.
// Inline documents come from the service and must not read local files.
func referencesCSV(doc *figfile.Document) bool {
	for _, p := range doc.Plots {
		for _, c := range p.Charts {
			if c.CSV != "" {
				return true
			}
		}
	}
	return false
}
