// Package repo holds the ent-generated client for the InternLink data model.
// Run `go generate ./internal/repo` after changing schemas in internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
