// Package config defines the format-agnostic model of the biome label
// document and the Loader interface that produces it.
//
// The label document is the versioned list of biome names and their numeric
// codes used when packing leaf payloads. Concrete loaders, such as the HCL
// one in the hcl_adapter package, translate their source format into
// LabelModel; the labels package turns the model into an immutable table.
package config
