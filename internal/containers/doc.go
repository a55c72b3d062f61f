// Package containers holds the fixed table of freight container types the
// optimizer may allocate cargo to. The table is read-only for the lifetime of
// the process; adding a container type is a change to the table in catalog.go.
package containers
