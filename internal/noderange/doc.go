// internal/noderange/doc.go

/*
Package noderange parses the range descriptors found in climate parameter
dumps.

A descriptor is either a bare integer such as `-4500`, which stands for the
single-value range [-4500, -4500], or a bracketed inclusive interval such as
`[-10000--4500]`. Both bounds may be negative, so the separating hyphen is
the one that follows the first number.
*/
package noderange
