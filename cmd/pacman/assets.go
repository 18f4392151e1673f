package main

import "embed"

// bundled holds the default images. The menu falls back to the Go Regular
// font when no font file is configured.
//
//go:embed assets
var bundled embed.FS
