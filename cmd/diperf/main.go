// Command diperf measures setup, injection and teardown latency of the
// injection approaches in package subjects and prints the medians.
//
//	diperf run --rounds 100 --format markdown
//	diperf run --only dig,injgen --format json --out results.json
//	diperf list
//
// Settings can also come from ./diperf.yaml, a .env file or DIPERF_*
// environment variables. Run the suite once per process: some subjects keep
// process-wide state.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
