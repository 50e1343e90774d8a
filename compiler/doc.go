/*

Stages of the toolkit

Program Text ->
	lex ->
Tokens

Program Text ->
	front ->
Declaration Tree (ast.File) ->
	symtab ->
Symbol Table

Statement Lines ->
	opt ->
Statement Lines ->
	gen ->
Accumulator Instructions

Program Text ->
	sema ->
Diagnostics

*/
package compiler
