// Package ir provides the in-memory value model of the notation.
//
// # Nodes
//
// A [Node] holds one value of one [Type]: null, bool, integer, decimal,
// currency, time, string, identifier or expression. Setting a value of
// another type switches the node's type and releases the previous value;
// typed getters such as [Node.IntegerValue] panic when the node holds a
// different type.
//
// Around its value a node carries
//
//   - an optional name, used when the node is a member of a scope and
//     looked up by its [NameHash];
//   - a unit, for integers, decimals and currencies;
//   - value markers: uncertain or guess (never both) and an
//     approximation in [-3, 3];
//   - a source and a sub-source, small provenance numbers with their
//     own uncertainty markers;
//   - an operator, used when the node is an operand of an expression;
//   - tags, which are nodes themselves: a tag's children are its
//     arguments;
//   - children, the members of the node's scope;
//   - an optional quantity, a single attached node.
//
// Expressions hold their operands separately from their children, so
// an expression can carry a scope of its own.
//
// # Time values
//
// A time value is a [chrono.Time] with flags saying whether it has a
// date, a clock or both, whether it is zoned or a floating wall clock,
// and whether the year, or year and month, are left to context.
// [Node.ResolveTime] fills in what a time leaves to a context time and
// [Node.ReduceTime] does the opposite.
//
// # Ownership
//
// A parent exclusively owns its sub-nodes. [Node.Clone] and
// [Node.CopyFrom] copy deeply; [Node.MoveFrom] transfers content and
// leaves its source null. Trees are not safe for concurrent mutation.
package ir
