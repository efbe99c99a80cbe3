// Package web содержит шаблоны страниц карт и статику для браузера
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS

//go:embed static
var Static embed.FS
