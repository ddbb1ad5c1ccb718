// Package builder fills an Augur configuration document section by section.
//
// Each builder method owns the document for the duration of the call and
// either completes its section or leaves the document unchanged. Status lines
// for the operator are written to the console writer given to [New].
package builder
