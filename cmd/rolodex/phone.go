// Phone command: list a contact's phone numbers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var phoneCmd = &cobra.Command{
	Use:   "phone <name>",
	Short: "Show a contact's phone numbers",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		rec, ok := contacts.Find(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Contact %s not found.\n", name)
			os.Exit(exitUserError)
		}

		if flagJSON {
			printJSON(viewOf(rec))
			return
		}
		fmt.Println(handlePhone(contacts, name))
	},
}
