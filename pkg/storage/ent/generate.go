// Package ent holds the generated ent client for the studyforge schema.
// Run go generate to regenerate after editing schema/.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
