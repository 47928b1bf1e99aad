package domain

import "fmt"

// Disk is an immutable sized token. Disks are ordered by size only.
type Disk struct {
	size int
}

// NewDisk creates a disk of the given size.
func NewDisk(size int) Disk {
	return Disk{size: size}
}

// Size returns the disk size. 1 is the smallest disk.
func (d Disk) Size() int {
	return d.size
}

// Less reports whether d is strictly smaller than other.
func (d Disk) Less(other Disk) bool {
	return d.size < other.size
}

// String implements fmt.Stringer.
func (d Disk) String() string {
	return fmt.Sprintf("Disk(%d)", d.size)
}
