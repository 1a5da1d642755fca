// Interactive prompt. Runs when the CLI is invoked without a
// subcommand: one command per line, whitespace-separated arguments,
// dispatched to the same handlers as the one-shot subcommands.
//
// The book is saved exactly once, when the session ends via exit, close,
// or end of input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

func runREPL(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter a command: ")
		if !scanner.Scan() {
			// End of input behaves like exit.
			fmt.Fprintln(out, "Good bye!")
			persistBook()
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command := strings.ToLower(fields[0])
		args := fields[1:]

		if command == "exit" || command == "close" {
			fmt.Fprintln(out, "Good bye!")
			persistBook()
			return nil
		}
		dispatch(out, command, args)
	}
}

// dispatch executes one prompt command. Argument-count misses print a
// usage line and leave the book untouched.
func dispatch(out io.Writer, command string, args []string) {
	switch command {
	case "hello":
		fmt.Fprintln(out, "How can I help you?")

	case "add":
		if len(args) < 2 {
			fmt.Fprintln(out, "Not enough arguments. Usage: add [name] [phone] [birthday]")
			return
		}
		birthday := ""
		if len(args) > 2 {
			birthday = args[2]
		}
		msg, _ := handleAdd(contacts, args[0], args[1], birthday)
		fmt.Fprintln(out, msg)

	case "change":
		if len(args) < 3 {
			fmt.Fprintln(out, "Not enough arguments. Usage: change [name] [old_phone] [new_phone]")
			return
		}
		msg, _ := handleChange(contacts, args[0], args[1], args[2])
		fmt.Fprintln(out, msg)

	case "phone":
		if len(args) < 1 {
			fmt.Fprintln(out, "Not enough arguments. Usage: phone [name]")
			return
		}
		fmt.Fprintln(out, handlePhone(contacts, args[0]))

	case "all":
		fmt.Fprintln(out, handleAll(contacts))

	case "delete":
		if len(args) < 1 {
			fmt.Fprintln(out, "Not enough arguments. Usage: delete [name]")
			return
		}
		msg, _ := handleDelete(contacts, args[0])
		fmt.Fprintln(out, msg)

	case "add-birthday":
		if len(args) < 2 {
			fmt.Fprintln(out, "Not enough arguments. Usage: add-birthday [name] [birthday]")
			return
		}
		msg, _ := handleAddBirthday(contacts, args[0], args[1])
		fmt.Fprintln(out, msg)

	case "show-birthday":
		if len(args) < 1 {
			fmt.Fprintln(out, "Not enough arguments. Usage: show-birthday [name]")
			return
		}
		fmt.Fprintln(out, handleShowBirthday(contacts, args[0]))

	case "birthdays":
		fmt.Fprintln(out, handleBirthdays(contacts, upcomingDays(), time.Now()))

	default:
		fmt.Fprintln(out, "Invalid command.")
	}
}
