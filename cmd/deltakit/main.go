package main

import (
	"os"

	"github.com/rcliao/deltakit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
