// Package api holds the OpenAPI document the HTTP adapter validates requests
// against and serves through Swagger UI.
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
