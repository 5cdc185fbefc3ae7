package main

import (
	"userpanel/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
