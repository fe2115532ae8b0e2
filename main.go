package main

import (
	"fmt"
	"os"

	"github.com/go-i2p/go-signalcontent/lib/util"
)

func main() {
	defer util.CloseAll()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", errorKind(err), err)
		util.CloseAll()
		os.Exit(exitCode(err))
	}
}
