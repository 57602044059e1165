// Package biometree holds the in-memory climate decision tree.
//
// Nodes are addressed by a path of child slots from the root. The tree grows
// on demand: inserting at a path creates every missing intermediate node and
// pads skipped sibling slots with empty placeholder nodes, because the
// encoded table refers to every slot up to the last populated one.
//
// Once built, AssignIDs numbers the nodes in pre-order and EncodeC renders
// them as a C initializer list, one node per line.
package biometree
