// Command stowr is a placeholder lookup CLI for stowed assets.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	name := flag.String("name", "", "name of the asset to show")
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "usage: stowr -name <asset>")
		os.Exit(2)
	}

	fmt.Printf("Asset [%s] not found...yet!\n", *name)
}
