package domain

import "fmt"

// Peg is a stack of disks, largest at the bottom.
// Every successful Put keeps the stack strictly decreasing from bottom to top.
type Peg struct {
	disks []Disk
}

// NewPeg creates an empty peg.
func NewPeg() *Peg {
	return &Peg{}
}

// NewPegWithDisks creates a peg holding disks n, n-1, ..., 1 (bottom to top).
func NewPegWithDisks(n int) *Peg {
	p := &Peg{disks: make([]Disk, 0, n)}
	for size := n; size >= 1; size-- {
		if err := p.Put(NewDisk(size)); err != nil {
			// Sizes are pushed in strictly decreasing order.
			panic(err)
		}
	}
	return p
}

// Put pushes a disk onto the peg.
// It fails with ErrOversizedDisk if the top disk is not larger than d; the peg is left unchanged.
func (p *Peg) Put(d Disk) error {
	if top, ok := p.Peek(); ok && !d.Less(top) {
		return fmt.Errorf("%w: %s", ErrOversizedDisk, d)
	}
	p.disks = append(p.disks, d)
	return nil
}

// Take removes and returns the top disk. ok is false when the peg is empty.
func (p *Peg) Take() (d Disk, ok bool) {
	if len(p.disks) == 0 {
		return Disk{}, false
	}
	last := len(p.disks) - 1
	d = p.disks[last]
	p.disks = p.disks[:last]
	return d, true
}

// Peek returns the top disk without removing it.
func (p *Peg) Peek() (Disk, bool) {
	if len(p.disks) == 0 {
		return Disk{}, false
	}
	return p.disks[len(p.disks)-1], true
}

// IsEmpty reports whether the peg holds no disks.
func (p *Peg) IsEmpty() bool {
	return len(p.disks) == 0
}

// Count returns the number of disks on the peg.
func (p *Peg) Count() int {
	return len(p.disks)
}

// ContainsSmallest reports whether the disk of size 1 is on this peg.
func (p *Peg) ContainsSmallest() bool {
	for _, d := range p.disks {
		if d.Size() == 1 {
			return true
		}
	}
	return false
}

// Disks returns a copy of the stack, bottom to top.
func (p *Peg) Disks() []Disk {
	out := make([]Disk, len(p.disks))
	copy(out, p.disks)
	return out
}
