// Package feed serves the read-only activity feed shown next to the board.
package feed
