// Command holocron serves the catalog and favorites API and carries the
// out-of-band administration commands (migrations, users, seed data).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
