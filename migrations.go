// Package linkrouter holds assets shared by the commands, such as the embedded
// database migrations.
package linkrouter

import "embed"

// Migrations contains the goose migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
