// Package repo holds the ent-generated data access client.
//
// Run `go generate ./internal/repo` after changing any schema under
// internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert,sql/lock ../schema
