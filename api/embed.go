// Package api carries the OpenAPI document of mynaming.
package api

import _ "embed"

// Spec is the OpenAPI 3 document served by the naming node and the example service.
//
//go:embed mynaming.openapi.yaml
var Spec []byte
