/*
This file is the entry point for the cloud-atlas application.
It initializes and executes the root command defined in the cmd package.
*/
package main

import "github.com/Mikeoo31/cloud-atlas/cmd"

func main() {
	cmd.Execute()
}
