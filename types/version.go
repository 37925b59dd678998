// Package types holds small shared types for the peerlink client.
package types

// Version is the canonical project version, shared by the CLI and the
// version command.
const Version = "0.3.0"
