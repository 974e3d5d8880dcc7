// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package fstree

// WalkFunc is called once per container visited by Walk. depth is 0
// for the container Walk started from. Returning a non-nil error stops
// the walk and Walk returns that error.
type WalkFunc func(container *Container, depth int) error

// Walk visits start and every container below it in pre-order,
// children in insertion order. It keeps an explicit stack instead of
// recursing, so deep trees do not grow the call stack.
func Walk(start *Container, fn WalkFunc) error {
	type frame struct {
		container *Container
		depth     int
	}

	stack := []frame{{container: start}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(top.container, top.depth); err != nil {
			return err
		}

		// Push in reverse so the first child is visited first.
		children := top.container.children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{container: children[i], depth: top.depth + 1})
		}
	}
	return nil
}
