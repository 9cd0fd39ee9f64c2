// Package constants holds process-wide literals shared across commands.
package constants

const (
	AppName      = "internlink"
	ConfigName   = "config"
	ConfigFormat = "yaml"
)
