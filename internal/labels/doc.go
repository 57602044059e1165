// Package labels maps biome names to the numeric codes stored in packed
// table payloads.
//
// The mapping is versioned: names are added release by release, some codes
// are derived from others (mutated variants sit at base+128) and renamed
// biomes keep the code of their old name. The whole history is declared in a
// label document (see biomes.hcl), evaluated once and frozen into a Table.
package labels
