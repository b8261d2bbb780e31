// Command phixelctl migrates legacy data and talks to a PhixelForge server.
package main

import "os"

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
