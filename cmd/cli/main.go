package main

import "mfspatch/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
