package main

import (
	"github.com/arvellene/storefront/cmd"
)

func main() {
	cmd.Start()
}
