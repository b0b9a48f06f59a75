// Package slist provides a singly-linked list that keeps a reference
// to its last node so that both ends can be reached in constant time.
//
// A List is not safe for concurrent use.
package slist

import "errors"

var (
	// ErrEmpty is returned by operations that need at least one
	// element when called on an empty list.
	ErrEmpty = errors.New("slist: empty list")

	// ErrOutOfRange is returned, wrapped with the offending index and
	// the list's size, by operations given an index outside of the
	// list.
	ErrOutOfRange = errors.New("slist: index out of range")
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
