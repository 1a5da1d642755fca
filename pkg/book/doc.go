// Package book defines the contact-book domain: validated phone and
// birthday fields, contact records, and the Book container with its
// upcoming-birthday query and upsert workflow.
//
// All validation failures are returned to the caller as sentinel errors;
// lookup misses are reported as booleans. The package never prints.
package book
