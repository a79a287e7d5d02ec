// Package terminal hosts the engine on a tcell screen.
//
// One cell is one surface unit: columns are x and rows are y. Mouse motion is
// reported at cell centers, and key events are forwarded on Keys for the
// binary to interpret.
package terminal
