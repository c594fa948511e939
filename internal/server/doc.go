// Package server owns the transport server lifecycle: construction from
// configuration, startup, and signal-driven graceful shutdown.
package server
