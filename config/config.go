package config

const (
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DefaultNetwork  = "mainnet"
	DefaultLogLevel = 2
)
