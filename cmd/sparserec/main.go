// SPDX-License-Identifier: MIT

// Command sparserec scores items for one profile vector against a sparse
// rating matrix and prints the ranking as JSON.
//
// # Configuration
//
// Loaded via koanf with layered sources (highest priority wins):
//   - SPARSEREC_* environment variables (SPARSEREC_MATRIX_LENIENT=true)
//   - a YAML file (-config, SPARSEREC_CONFIG or ./sparserec.yaml)
//   - built-in defaults
//
// # Inputs
//
//   - input.matrix_path: matrix in the sparse wire format
//     {"rows":R,"columns":C,"entries":[{"row":r,"col":c,"value":v},...]}
//   - input.merge_paths: more matrices added into the first one (AddMovie)
//   - input.vector_path: JSON array of C numbers
//
// # Output
//
// One JSON object on stdout:
//
//	{"scores":[...],"top":[{"index":i,"score":s},...],"dense":[[...]],"transposed":{...}}
//
// "dense" and "transposed" appear only when output.include_dense and
// output.include_transpose are set.
//
// # Example Usage
//
//	export SPARSEREC_INPUT_MATRIX_PATH=ratings.json
//	export SPARSEREC_INPUT_VECTOR_PATH=profile.json
//	sparserec -config sparserec.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "sparserec:", err)
		os.Exit(1)
	}
}
