// Package list provides a circular doubly-linked list built from intrusive
// nodes.
//
// A list is identified by a sentinel Node whose next and prev links point into
// the ring. An empty list is a sentinel linked to itself. Payload nodes carry
// a reference to their owner, so a Node taken from a list can be turned back
// into the value that embeds it via Entry.
//
// None of the operations are safe for concurrent use. Callers serialise
// access to a list themselves.
package list
