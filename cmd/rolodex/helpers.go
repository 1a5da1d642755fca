// Shared helpers for rolodex CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// persistBook saves the book back through the snapshot store. Mutating
// commands call it once, after their mutation; a save failure is a
// system error.
func persistBook() {
	if err := snapshots.Save(contacts); err != nil {
		fmt.Fprintln(os.Stderr, "save:", err)
		os.Exit(exitSysError)
	}
}

// contactView is the JSON output shape for read commands.
type contactView struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

func viewOf(rec *book.Record) contactView {
	v := contactView{Name: rec.Name(), Phones: rec.Phones()}
	if bd, ok := rec.Birthday(); ok {
		v.Birthday = bd.String()
	}
	return v
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode output:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(data))
}
