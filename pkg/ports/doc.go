/*
Package ports defines the driven ports (interfaces) of the Towers engine.

These interfaces decouple the session loop from the strategies it coordinates,
so a human-driven, random or scripted player plugs in the same way as the
reference optimal one.

# Key Interfaces

  - Player: Proposes and executes one move per turn on an exclusively owned board.
*/
package ports
