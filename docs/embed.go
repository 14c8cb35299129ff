// Package docs embeds the GridTrace API documentation files.
package docs

import (
	_ "embed"
)

// OpenAPISpec contains the embedded GridTrace OpenAPI specification in
// YAML format, served by the docs handler.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
