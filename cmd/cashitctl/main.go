package main

import (
	"os"

	"github.com/SscSPs/cashit_ledger/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
