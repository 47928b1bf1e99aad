/*
Package towers simulates Towers of Hanoi game sessions.

A session pairs a player strategy with a three-peg board. Every turn the player
inspects the board and moves a single disk; the session reports each turn as an
event until the puzzle is solved, the player gives up or an illegal move occurs.

# Concept

The board enforces the rules (a disk never lands on a smaller one, disks are
never created or lost), the solver computes the next optimal move in constant
time, and the session turns raw player actions into domain events that a host
consumes lazily, one turn per pull.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/towers"
	)

	func main() {
		s, err := towers.NewSession(3, "Joe")
		if err != nil {
			log.Fatal(err)
		}
		for i, event := range s.Iter().All() {
			fmt.Printf("%d: %s\n", i, event)
		}
	}
*/
package towers
