// Command stowr-gen expands stowr:domain declarations into their generated
// artifact files. It is normally driven by go:generate directives placed next
// to the declarations.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/stowr/backend/gen"
)

var (
	typeFlag = flag.String("type", "", "entity type to expand (required)")
	dirFlag  = flag.String("dir", ".", "package directory holding the declarations")
	outFlag  = flag.String("out", "", "output file name (default <type>_gen.go)")
	pkgFlag  = flag.String("pkg", "", "import path of the target package (default derived from -type)")
	cmdFlag  = flag.String("commands", "", "comma-separated command method names (default: every flagged method)")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stowr-gen: ")
	flag.Usage = usage
	flag.Parse()

	if *typeFlag == "" {
		usage()
		os.Exit(2)
	}

	decls, err := gen.ParseDir(*dirFlag, *typeFlag)
	if err != nil {
		log.Fatal(err)
	}

	pkgs := gen.DefaultPkgs()
	for name, path := range decls.Pkgs {
		pkgs[name] = path
	}
	pkg := *pkgFlag
	if pkg == "" {
		pkg = gen.ModulePath + "/domain/" + strings.ToLower(*typeFlag)
	}

	var commands []string
	if *cmdFlag != "" {
		commands = strings.Split(*cmdFlag, ",")
	}

	src, err := gen.Generate(decls.Record, decls.Methods, commands, pkg, pkgs)
	if err != nil {
		log.Fatal(err)
	}

	out := *outFlag
	if out == "" {
		out = strings.ToLower(*typeFlag) + "_gen.go"
	}
	if err := os.WriteFile(filepath.Join(*dirFlag, out), src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: stowr-gen -type <Entity> [-dir <pkgdir>] [-out <file>] [-commands <m1,m2>]")
	flag.PrintDefaults()
}
