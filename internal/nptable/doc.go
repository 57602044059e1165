// Package nptable packs the climate tree into a table of 64-bit words.
//
// The input is the C initializer list written by biometree.EncodeC, one node
// per line. Each node contributes six parameter intervals, the noise points,
// and either its biome label (leaves) or the id of its first child (inner
// nodes). Noise points repeat heavily across the tree, so they are interned
// into a sorted catalog of at most 256 entries and every node refers to
// them by one-byte index.
//
// # Word layout
//
//	bits  0..7   catalog index of axis 0
//	bits  8..15  catalog index of axis 1
//	...
//	bits 40..47  catalog index of axis 5
//	bits 48..63  payload
//
// A payload whose high byte is 0xFF carries a biome code in its low byte;
// any other payload is the index of the node's first child. Printed in hex
// the payload therefore comes first, followed by the axis indices from the
// last axis to the first.
package nptable
