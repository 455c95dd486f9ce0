// Package resources embeds the default section files served by resxd.
// Each file is one section laid out as lang => key => value.
package resources

import "embed"

//go:embed *.yaml
var FS embed.FS
