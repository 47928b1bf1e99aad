package domain

import "fmt"

// PegCount is the number of pegs on every board.
const PegCount = 3

// Snapshot holds the disk sizes of each peg, bottom to top.
type Snapshot [PegCount][]int

// Board is the game state: exactly three pegs indexed 0 (source), 1 (middle) and 2 (destination).
// The total number of disks never changes after construction.
type Board struct {
	pegs [PegCount]Peg
}

// NewBoard creates a board with n disks stacked on peg 0 and the other pegs empty.
func NewBoard(n int) (*Board, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDiskCount, n)
	}
	b := &Board{}
	b.pegs[0] = *NewPegWithDisks(n)
	return b, nil
}

func (b *Board) peg(index int) (*Peg, error) {
	if index < 0 || index >= PegCount {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	return &b.pegs[index], nil
}

// Put places a disk on the addressed peg, propagating the peg's ordering failure.
func (b *Board) Put(d Disk, index int) error {
	p, err := b.peg(index)
	if err != nil {
		return err
	}
	return p.Put(d)
}

// Take removes the top disk of the addressed peg. ok is false when that peg is empty.
func (b *Board) Take(index int) (d Disk, ok bool, err error) {
	p, err := b.peg(index)
	if err != nil {
		return Disk{}, false, err
	}
	d, ok = p.Take()
	return d, ok, nil
}

// Peek returns the top disk of the addressed peg without removing it.
func (b *Board) Peek(index int) (d Disk, ok bool, err error) {
	p, err := b.peg(index)
	if err != nil {
		return Disk{}, false, err
	}
	d, ok = p.Peek()
	return d, ok, nil
}

// Count returns the number of disks on the addressed peg.
func (b *Board) Count(index int) (int, error) {
	p, err := b.peg(index)
	if err != nil {
		return 0, err
	}
	return p.Count(), nil
}

// IsFinished reports whether every disk sits on the destination peg.
func (b *Board) IsFinished() bool {
	return b.pegs[0].IsEmpty() && b.pegs[1].IsEmpty()
}

// NumDisks returns the total number of disks across all pegs.
func (b *Board) NumDisks() int {
	total := 0
	for i := range b.pegs {
		total += b.pegs[i].Count()
	}
	return total
}

// Snapshot returns a deep copy of the disk sizes on each peg.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for i := range b.pegs {
		sizes := make([]int, 0, b.pegs[i].Count())
		for _, d := range b.pegs[i].disks {
			sizes = append(sizes, d.Size())
		}
		s[i] = sizes
	}
	return s
}
