// Package commands defines the nupmerge CLI.
//
// Commands
//
//   - serve      Run the merge service (connect RPC + download route)
//   - merge      Impose local PDF files into one N-up PDF
//   - info       Print the page sizes of PDF files
//   - presets    List layout presets, paper sizes and defaults
//
// The root command loads the HCL config before any subcommand runs; flags
// given on the command line win over the file.
package commands
