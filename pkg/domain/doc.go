/*
Package domain contains the core game model of the Towers engine.

It defines the board and its invariants, the raw actions a player reports and the
events a session emits. The package is kept pure and free of I/O, so every rule of
the game can be checked without a player or a host.

# Key Entities

  - Disk: An immutable sized token, ordered by size.
  - Peg: A stack of disks that rejects any disk larger than its current top.
  - Board: Exactly three pegs addressed by index, with bounds checks.
  - PlayerAction: What a player reports after a turn (Moved or Finished).
  - Event: What a session reports to its consumer (PlayerMovedDisk, PlayerWins, PlayerGaveUp, PlayerCheated).
*/
package domain
