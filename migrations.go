// Package uuid62 is the root of the module. It embeds the SQL migrations so
// the migrate command and storage tests apply the same schema.
package uuid62

import "embed"

// Migrations holds the goose migration files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
