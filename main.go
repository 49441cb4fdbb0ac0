package main

import "github.com/KineticBytes/goldenage-cli/cmd"

func main() {
	cmd.Execute()
}
