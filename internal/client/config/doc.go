// Package config loads runtime configuration for the peer review CLI.
//
// Values are resolved in three passes, later ones overriding earlier ones:
// built-in defaults (see (*Config).LoadDefaults), an optional JSON file
// selected with -c or -config, and finally command-line flags.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s"
//	}
//
// The package does not read environment variables; use the JSON file or
// flags to configure values.
package config
