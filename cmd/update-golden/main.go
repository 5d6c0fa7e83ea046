package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/clems4ever/ccorpus/cleaner"
)

func main() {
	// Paths are relative to the repository root
	pattern := "cleaner/testdata/*.c"

	inputs, err := filepath.Glob(pattern)
	if err != nil {
		log.Fatalf("Bad pattern %s: %v", pattern, err)
	}
	if len(inputs) == 0 {
		log.Fatalf("No inputs match %s. Please run this command from the repository root.", pattern)
	}

	for _, input := range inputs {
		src, err := os.ReadFile(input)
		if err != nil {
			log.Fatalf("Failed to read input file: %v", err)
		}

		out, marker, ok := cleaner.Process(string(src), cleaner.DefaultBlacklist, cleaner.DefaultRewriteRules)
		if !ok {
			out = "rejected: " + marker + "\n"
		}

		golden := strings.TrimSuffix(input, ".c") + ".golden"
		fmt.Printf("Writing %s...\n", golden)
		if err := os.WriteFile(golden, []byte(out), 0644); err != nil {
			log.Fatalf("Failed to write golden file: %v", err)
		}
	}

	fmt.Println("Done. Golden files updated.")
}
