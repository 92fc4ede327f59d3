// Package app wires configuration, the PDF backend, the imposition engine,
// the output store and the RPC server into one runnable unit shared by the
// CLI subcommands.
package app
