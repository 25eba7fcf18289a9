// Package cli implements the craftgrid command line.
//
//	craftgrid match  --recipes book.yaml --grids grids.yaml [--concurrency N] [--metrics]
//	craftgrid take   --recipes book.yaml --grids grids.yaml --grid NAME --taken planks:4
//	craftgrid remove --grids grids.yaml --grid NAME wood:3 stone:1
//
// Every command logs through log/slog on stderr at the level chosen by
// --log-level and writes its results on stdout.
package cli
