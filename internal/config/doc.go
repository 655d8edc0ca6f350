// Package config resolves the hook's configuration from layered sources.
//
// Precedence, lowest to highest:
//  1. Built-in defaults
//  2. Global config (~/.config/githooks/config.yaml)
//  3. Local config (.githooks.yaml in the git root)
//  4. Environment variables (GITHOOKS_*)
//
// The three settings are the ticket labels, the ticket line prefix, and the
// commit sources eligible for insertion. Each resolved value tracks the
// source it came from for diagnostics.
package config
