// Package apidoc publishes the OpenAPI description of the HTTP surface.
package apidoc

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var document []byte

// Operation summarises one documented endpoint.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string
}

var (
	loadOnce sync.Once
	loaded   *openapi3.T
	loadErr  error
)

// Raw returns the embedded YAML document.
func Raw() []byte {
	return append([]byte(nil), document...)
}

// Load parses and validates the embedded document. The result is shared, so
// callers must not mutate it. Parsing happens once and is detached from ctx;
// a cancelled ctx only fails this call.
func Load(ctx context.Context) (*openapi3.T, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(context.Background(), document)
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return loaded, loadErr
}

func parse(ctx context.Context, raw []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("apidoc: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("apidoc: validate: %w", err)
	}
	return spec, nil
}

// JSON renders the document as JSON for the /openapi.json endpoint.
func JSON(ctx context.Context) ([]byte, error) {
	spec, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	data, err := spec.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("apidoc: encode: %w", err)
	}
	return data, nil
}

// Operations lists documented endpoints ordered by path then method.
func Operations(ctx context.Context) ([]Operation, error) {
	spec, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []Operation
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, op := range item.Operations() {
				if op == nil {
					continue
				}
				id := op.OperationID
				if id == "" {
					id = strings.ToLower(method) + ":" + path
				}
				out = append(out, Operation{ID: id, Method: method, Path: path, Summary: op.Summary})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out, nil
}
