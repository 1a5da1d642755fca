// Add command: create or update a contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <phone> [birthday]",
	Short: "Add a contact or another phone to an existing one",
	Long: `Add creates a contact with the given phone number, or appends the
number to an existing contact of that name. An optional birthday in
DD.MM.YYYY format sets or overwrites the contact's birthday.

Example:
  rolodex add Ann 1234567890
  rolodex add Ann 0987654321 01.01.2000`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		birthday := ""
		if len(args) == 3 {
			birthday = args[2]
		}

		msg, changed := handleAdd(contacts, args[0], args[1], birthday)
		if changed {
			persistBook()
		}
		fmt.Println(msg)
	},
}
