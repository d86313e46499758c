// Package casino holds assets shared by the commands of the Crypto Casino API.
package casino

import "embed"

// Migrations are the goose SQL migrations of the service schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
