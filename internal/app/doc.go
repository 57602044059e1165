// Package app contains the converter logic. It defines the App struct, its
// configuration and the conversion lifecycle, decoupled from the CLI
// entrypoints that build it.
package app
