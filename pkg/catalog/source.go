package catalog

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultName is the catalog document name used by the original endpoint and
// by the embedded bundle.
const DefaultName = "datos.json"

// Source identifies where a catalog document lives so loaders can operate on
// files, fs.FS entries, or URLs without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }

func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }

func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a document inside an fs.FS. With
// no FileSystem configured on the loader, the embedded bundle is used.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }

func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("catalog: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("catalog: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// ParseSource maps a configuration string onto a Source: http(s) prefixes
// become URL sources, anything else a file path, and an empty value the
// embedded default catalog.
func ParseSource(raw string) (Source, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SourceFromFS(DefaultName), nil
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		if _, err := url.ParseRequestURI(trimmed); err != nil {
			return nil, fmt.Errorf("catalog: invalid URL %q: %w", trimmed, err)
		}
		return urlSource{raw: trimmed}, nil
	}
	return SourceFromFile(trimmed), nil
}
