package brochure

import "embed"

// EmbeddedAssets contains assets shipped with the engine: the admin
// editor script and the bundled default content document.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
