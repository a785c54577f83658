// Package table implements the pipe-table editing engine: parsing table lines
// into rows, measuring and formatting columns, reshaping the grid, and
// computing cursor targets for cell navigation.
//
// Every function is pure. Callers pass the table lines and positions they
// read from the document and apply the returned lines and positions as a
// single edit.
package table
