package docs

import "embed"

// FS contains long-form Markdown docs bundled with the remind binary.
//
//go:embed help.md
var FS embed.FS
