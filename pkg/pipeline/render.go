package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/framechart/pkg/figure"
	"github.com/matzehuels/framechart/pkg/render"
	"github.com/matzehuels/framechart/pkg/render/svg"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, l figure.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	// PDF is converted from SVG, so draw it at most once.
	var svgData []byte
	svgDoc := func() []byte {
		if svgData == nil {
			svgData = l.SVG(svgOptions(opts)...)
		}
		return svgData
	}

	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = svgDoc()
		case FormatPNG:
			data, err = renderPNG(l, opts.Scale)
		case FormatPDF:
			data, err = render.ToPDF(ctx, svgDoc())
		case FormatJSON:
			data, err = MarshalLayout(l)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderPNG(l figure.Layout, scale float64) ([]byte, error) {
	p, err := l.RasterScaled(scale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := p.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func svgOptions(opts Options) []svg.Option {
	if opts.EmbedFont {
		return []svg.Option{svg.WithEmbeddedFont()}
	}
	return nil
}
