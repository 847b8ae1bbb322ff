// Package app contains the exhibit tool's run lifecycle: load the dataset,
// settle the selection, plan the layout and print it. It is decoupled from
// flag parsing and process exit handling, which live in internal/cli and
// cmd/exhibit.
package app
