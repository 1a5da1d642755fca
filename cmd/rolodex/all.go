// All command: list every contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "List every contact in insertion order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if flagJSON {
			views := make([]contactView, 0, contacts.Len())
			for _, rec := range contacts.Records() {
				views = append(views, viewOf(rec))
			}
			printJSON(views)
			return
		}
		fmt.Println(handleAll(contacts))
	},
}
