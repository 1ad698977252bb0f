package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Key namespaces. Every key produced by a Keyer contains exactly one of them
// as a colon-separated segment.
const (
	nsLayout   = "layout"
	nsArtifact = "artifact"
)

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey addresses the fitted layout of a figure document.
	LayoutKey(docHash string, opts LayoutKeyOpts) string

	// ArtifactKey addresses a rendered output of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts lists the options that change a fitted layout.
type LayoutKeyOpts struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ArtifactKeyOpts lists the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Scale     float64 `json:"scale,omitempty"`
	EmbedFont bool    `json:"embed_font,omitempty"`
}

// DefaultKeyer hashes key options into fixed-length keys of the form
// "layout:<sha256>" and "artifact:<format>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return digestKey(nsLayout, docHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return digestKey(nsArtifact+":"+opts.Format, layoutHash, opts)
}

// ScopedKeyer prefixes every key of another Keyer. The CLI scopes keys by
// build version; a shared Redis can also be split per deployment:
//
//	keyer := NewScopedKeyer(nil, "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(docHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}

// Hash returns the hex SHA-256 digest of data. Figure documents and layouts
// are identified by it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// digestKey appends the digest of the JSON-encoded parts to ns. Parts are
// plain structs and strings, so encoding cannot fail.
func digestKey(ns string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return ns + ":" + Hash(data)
}

// keyType reports the namespace of key for cache hooks, skipping any scope
// prefix. Unknown keys report their first segment.
func keyType(key string) string {
	segments := strings.Split(key, ":")
	for _, s := range segments {
		if s == nsLayout || s == nsArtifact {
			return s
		}
	}
	return segments[0]
}
