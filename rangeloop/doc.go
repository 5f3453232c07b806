// Package rangeloop decides whether a for loop over a range can be lowered to
// a counted loop over primitive bounds instead of an iterator loop.
//
// The decision is made in three steps:
//
//  - Match looks at the syntax of the range expression only, and extracts
//    the bounds and operator of a.rangeTo(b) or a OP b.
//  - The Oracle checks that the resolved type of the whole range expression
//    is a builtin primitive range type, rejecting user types that shadow the
//    builtin names.
//  - The Guard checks that the resolved call target of the operator is the
//    builtin rangeTo of a primitive number class, rejecting user overloads.
//
// Only if all three agree does the Analyser return a Descriptor. The
// Descriptor denotes the closed interval [Left, Right] iterated in ascending
// order. A negative result is a normal outcome and means the code generator
// should use the generic iterator lowering.
package rangeloop
