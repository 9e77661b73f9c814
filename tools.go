//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// goose applies the postgres migrations under migrations/ and is
// managed through the tool directive in go.mod.
