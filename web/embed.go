// Package web holds the embedded single-page client served by the API.
package web

import "embed"

//go:embed static
var Static embed.FS
