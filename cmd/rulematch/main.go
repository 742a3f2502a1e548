/*
rulematch is a console utility matching a string against one of sample grammars.
Usage is

	rulematch [-g <name>] [-p] [-d <depth>] <input>

-g <name> defines grammar name, default is "word";

-p instructs rulematch to print the grammar scheme;

-d <depth> defines the depth of the printed rule tree, default is 0 (scheme summary only);

<input> is the string to match, a prefix of it is matched.

Output is "Result: success, <length>" or "Result: failure, 0";
exit code is 1 if the whole input does not match the grammar.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ekw/ruleparse/cmd/rulematch/internal"
)

var (
	grammarName string
	printScheme bool
	printDepth  int
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage is  rulematch [-g <name>] [-p] [-d <depth>] <input>")
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "  <input>")
		fmt.Fprintln(flag.CommandLine.Output(), "\tstring to match")
	}

	flag.StringVar(&grammarName, "g", "word", "grammar name, one of: "+strings.Join(internal.Names(), ", "))
	flag.BoolVar(&printScheme, "p", false, "print grammar scheme")
	flag.IntVar(&printDepth, "d", 0, "depth of printed rule tree")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	s, root, e := internal.Build(grammarName)
	if e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(3)
	}
	defer s.Free()

	res, e := root.Match(input)
	if e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(3)
	}

	status := "failure"
	if res.OK {
		status = "success"
	}
	fmt.Printf("Result: %s, %d\n", status, res.Length)

	if printScheme {
		if printDepth > 0 {
			e = s.PrintRule(os.Stdout, root, printDepth, "  ")
		} else {
			e = s.Print(os.Stdout)
		}
		if e != nil {
			fmt.Fprintln(os.Stderr, e.Error())
			os.Exit(3)
		}
	}

	if !res.OK || res.Length != len(input) {
		s.Free()
		os.Exit(1)
	}
}
