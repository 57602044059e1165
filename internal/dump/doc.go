// Package dump reads the climate tree out of a debugger transcript.
//
// The transcript is a pretty-printed object graph. Every tree node shows up
// as a line of the form
//
//	   3 = {MultiNoiseUtil$RTree$Leaf@4242} "Leaf{parameterSpace=[[-10000-10000], ..., 0]}"
//
// where the indentation encodes the nesting depth ((indent-1)/2), the leading
// number is the node's slot within its parent, and the bracketed list holds
// seven range descriptors. When the line right after a node names a biome
// resource key (`worldgen/biome / minecraft:plains`), that biome becomes the
// node's label. All other lines are ignored.
package dump
