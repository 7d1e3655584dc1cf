// Package cityio reads city lists and writes annealing reports.
//
// Input is whitespace-separated text: the city count N followed by N
// (name, x, y) groups. Tokens may be split across lines arbitrarily.
//
//	4
//	A 0 0
//	B 0 1
//	C 1 1
//	D 1 0
//
// Unlike a bare scanf loop, Parse fails fast on a non-integer count or
// coordinate, a negative count, a truncated list or trailing tokens.
package cityio
