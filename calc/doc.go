// Package calc implements a TI-84 style expression engine: calculator
// notation is translated to a canonical form, parsed into a small AST, and
// evaluated against a closed symbol table.
//
// The engine keeps a bounded evaluation history (feeding the Ans token) and a
// single memory cell. It is not safe for concurrent use; callers embedding an
// Engine in a concurrent host must serialize access themselves.
package calc
