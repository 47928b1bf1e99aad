/*
Package session drives a towers game turn by turn.

A Session owns one board and one player. Each turn asks the player for a single
move and reports the outcome as a domain.Event. Events are produced lazily
through an Iterator: one turn is played per pull, and the iterator ends right
after the first event that is not a move (win, give-up or cheat).

	s, _ := session.WithInitialDisks(player.NewOptimal("Joe"), 3)
	for i, event := range s.Iter().All() {
		fmt.Printf("%d: %s\n", i, event)
	}
*/
package session
