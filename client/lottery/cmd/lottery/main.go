package main

import (
	"os"

	"github.com/malbeclabs/lottery/client/lottery/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
