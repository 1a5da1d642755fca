// Change command: replace a contact's phone number.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var changeCmd = &cobra.Command{
	Use:   "change <name> <old_phone> <new_phone>",
	Short: "Replace one of a contact's phone numbers",
	Long: `Change replaces old_phone with new_phone on the named contact,
keeping its position in the contact's phone list.

Example:
  rolodex change Ann 1234567890 3333333333`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		msg, changed := handleChange(contacts, args[0], args[1], args[2])
		if changed {
			persistBook()
		}
		fmt.Println(msg)
	},
}
