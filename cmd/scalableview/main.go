package main

import (
	"github.com/matjam/scalableview/internal/cli"
)

func main() {
	cli.Execute()
}
