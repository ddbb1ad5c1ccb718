// Package document holds the Augur configuration document: an ordered set of
// named sections that is encoded as pretty-printed JSON and written to disk.
//
// Section order in the encoded output is the order in which sections were
// first set, which keeps the generated file stable from run to run.
package document
