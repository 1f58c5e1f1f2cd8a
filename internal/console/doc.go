// Package console implements a line-oriented command interpreter that drives
// a chain of string queues. It is used by cmd/qtest to exercise the queue
// operations interactively or from scripts.
package console
