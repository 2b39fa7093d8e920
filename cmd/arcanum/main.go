package main

import (
	"github.com/arcanum-game/arcanum/internal/cli"
)

func main() {
	cli.Execute()
}
