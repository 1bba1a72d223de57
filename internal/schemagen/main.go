// Command schemagen writes the JSON schema of the configuration or script
// file, for editors that do not read it from pagedots itself.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/macropower/pagedots/pkg/config"
	"github.com/macropower/pagedots/pkg/script"
)

var (
	kind    = flag.String("kind", "config", "Schema to generate, one of: config, script")
	outFile = flag.String("o", "", "Output file for the generated schema (default <kind>.v1beta1.json)")
)

func main() {
	flag.Parse()

	var generate func() ([]byte, error)

	switch *kind {
	case "config":
		generate = config.Schema
	case "script":
		generate = script.Schema
	default:
		log.Fatalf("unknown schema kind %q", *kind)
	}

	jsData, err := generate()
	if err != nil {
		log.Fatalf("generate JSON schema: %v", err)
	}

	out := *outFile
	if out == "" {
		out = *kind + ".v1beta1.json"
	}

	err = os.WriteFile(out, jsData, 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
