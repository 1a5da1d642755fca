// Delete command: remove a contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a contact from the book",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		msg, changed := handleDelete(contacts, args[0])
		if changed {
			persistBook()
		}
		fmt.Println(msg)
	},
}
