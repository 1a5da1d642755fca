// Birthday commands: add-birthday, show-birthday, birthdays.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var addBirthdayCmd = &cobra.Command{
	Use:   "add-birthday <name> <birthday>",
	Short: "Set a contact's birthday",
	Long: `Add-birthday sets or overwrites the named contact's birthday.
The date must be in DD.MM.YYYY format.

Example:
  rolodex add-birthday Ann 01.01.2000`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		msg, changed := handleAddBirthday(contacts, args[0], args[1])
		if changed {
			persistBook()
		}
		fmt.Println(msg)
	},
}

var showBirthdayCmd = &cobra.Command{
	Use:   "show-birthday <name>",
	Short: "Show a contact's birthday",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if flagJSON {
			if rec, ok := contacts.Find(args[0]); ok {
				printJSON(viewOf(rec))
				return
			}
		}
		fmt.Println(handleShowBirthday(contacts, args[0]))
	},
}

var flagDays int

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List contacts with a birthday in the coming window",
	Long: `Birthdays lists contacts whose birthday falls within the window
starting today. The window length comes from --days, falling back to
upcoming_days in config.yaml (default 7).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		days := flagDays
		if days <= 0 {
			days = upcomingDays()
		}

		if flagJSON {
			upcoming := contacts.UpcomingBirthdays(days, time.Now())
			views := make([]contactView, 0, len(upcoming))
			for _, rec := range upcoming {
				views = append(views, viewOf(rec))
			}
			printJSON(views)
			return
		}
		fmt.Println(handleBirthdays(contacts, days, time.Now()))
	},
}

func init() {
	birthdaysCmd.Flags().IntVar(&flagDays, "days", 0, "window length in days (default: upcoming_days from config)")
}
