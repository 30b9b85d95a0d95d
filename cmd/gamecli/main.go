package main

import (
	"github.com/AriellAlcantara/Gamebackend/internal/cli"
)

func main() {
	cli.Execute()
}
