// Package app holds the contract between cmd/registry-server and the process
// it runs, so main only parses flags and loads config.
package app

// Runner is a long-lived process that returns once it has shut down.
type Runner interface {
	Run() error
}
