// Package migrations embeds the SQL schema for the on-disk record backend.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
