package main

import (
	"github.com/replicatedhq/usersvc/cmd/usersvc/cli"
)

func main() {
	cli.InitAndExecute()
}
