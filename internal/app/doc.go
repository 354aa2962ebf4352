// Package app contains the core application logic. It defines the main App
// struct and the generation lifecycle — output bootstrap, concurrent
// emission, workspace finalization — decoupled from any specific
// entrypoint like a CLI.
package app
