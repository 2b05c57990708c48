// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command sarrfind is a small driver around the sarray package: it builds
// a suffix array for a text (given inline or read from a file) and prints
// every occurrence of a pattern.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/basiliskos/sarray"
)

func main() {
	text := flag.String("text", "", "text to index (ignored if -file is set)")
	file := flag.String("file", "", "path to a file holding the text to index")
	pattern := flag.String("pattern", "", "pattern to search for")
	flag.Parse()

	if *pattern == "" {
		log.Fatalf("sarrfind: -pattern is required")
	}

	body := []byte(*text)
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("sarrfind: reading %s: %v", *file, err)
		}
		body = data
	}

	idx, err := sarray.New(body)
	if err != nil {
		log.Fatalf("sarrfind: building index: %v", err)
	}

	positions := idx.Search([]byte(*pattern))
	sort.Ints(positions)
	fmt.Printf("%q occurs %d time(s): %v\n", *pattern, len(positions), positions)
}
