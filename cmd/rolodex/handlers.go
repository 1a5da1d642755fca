// Handlers translate command arguments into book operations and produce
// the messages shown to the user. Both the subcommands and the
// interactive prompt dispatch through these, so one-shot and REPL use
// behave identically.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// handleAdd runs the contact-upsert workflow. changed reports whether
// the book was mutated; a rejected phone still counts as changed when
// the record itself was created or its birthday applied.
func handleAdd(b *book.Book, name, phone, birthday string) (msg string, changed bool) {
	res, err := b.Upsert(name, phone, birthday)
	if err != nil {
		return fmt.Sprintf("Failed to add contact. %v", err), false
	}

	switch res.Outcome {
	case book.OutcomeAdded:
		msg = "Contact added."
	default:
		msg = "Contact updated."
	}
	if res.PhoneErr != nil {
		msg += fmt.Sprintf("\nPhone not added: %v", res.PhoneErr)
	}
	return msg, true
}

func handleChange(b *book.Book, name, oldPhone, newPhone string) (msg string, changed bool) {
	rec, ok := b.Find(name)
	if !ok {
		return fmt.Sprintf("Contact %s not found.", name), false
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return fmt.Sprintf("Failed to update phone number. %v", err), false
	}
	return fmt.Sprintf("Phone number for %s updated.", name), true
}

func handlePhone(b *book.Book, name string) string {
	rec, ok := b.Find(name)
	if !ok {
		return fmt.Sprintf("Contact %s not found.", name)
	}
	return fmt.Sprintf("%s's phone numbers: %s", name, strings.Join(rec.Phones(), ", "))
}

func handleAll(b *book.Book) string {
	if b.Len() == 0 {
		return "No contacts."
	}
	lines := make([]string, 0, b.Len())
	for _, rec := range b.Records() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n")
}

func handleDelete(b *book.Book, name string) (msg string, changed bool) {
	if !b.Delete(name) {
		return fmt.Sprintf("Contact %s not found.", name), false
	}
	return fmt.Sprintf("Contact %s deleted.", name), true
}

func handleAddBirthday(b *book.Book, name, birthday string) (msg string, changed bool) {
	rec, ok := b.Find(name)
	if !ok {
		return fmt.Sprintf("Contact %s not found.", name), false
	}
	if err := rec.SetBirthday(birthday); err != nil {
		return fmt.Sprintf("Failed to add birthday. %v", err), false
	}
	return fmt.Sprintf("Birthday added for contact %s.", name), true
}

func handleShowBirthday(b *book.Book, name string) string {
	rec, ok := b.Find(name)
	if !ok {
		return fmt.Sprintf("Contact %s not found.", name)
	}
	bd, ok := rec.Birthday()
	if !ok {
		return fmt.Sprintf("Birthday for contact %s is not set.", name)
	}
	return fmt.Sprintf("%s's birthday is on %s", name, bd)
}

func handleBirthdays(b *book.Book, days int, ref time.Time) string {
	upcoming := b.UpcomingBirthdays(days, ref)
	if len(upcoming) == 0 {
		return fmt.Sprintf("No upcoming birthdays in the next %d days.", days)
	}
	lines := []string{"Upcoming birthdays:"}
	for _, rec := range upcoming {
		bd, _ := rec.Birthday()
		lines = append(lines, fmt.Sprintf("%s on %s", rec.Name(), bd))
	}
	return strings.Join(lines, "\n")
}
