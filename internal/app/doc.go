// Package app wires configuration, clients and services together for each
// cloud-atlas command and writes the results to the command's output.
package app
