// Package main hosts the linguaforge CLI.
//
// Each text command reads one UTF-8 input (a file, or stdin with "-"), runs a
// single operation of the text service and prints the result as plain text, a
// table or JSON. Errors surface from main with an exit status derived from
// their project error code, so scripts can tell usage mistakes apart from
// failed operations.
package main
