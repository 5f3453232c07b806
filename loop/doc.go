// Package loop provides utilities for loop representation and detection.
//
// Loop detection walks a syntax tree, and for every for loop found asks the
// range analysis whether the loop can be lowered to a counted loop. The loop
// parameters (index variable, bounds, increment) of a lowerable loop are
// rendered in the form of a primitive counted loop, e.g.
//
//	i = 1; (i<=10); i = i + 1
//
// Loops are tracked on a stack during the walk so nested loops know their
// enclosing loop.
package loop
