package kary

import "fmt"

// IndexError is returned when an index lies outside of the grown levels and
// the level that would be grown next.
type IndexError struct {
	Index    int
	Capacity int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("kary: index %d out of bounds (capacity %d)", err.Index, err.Capacity)
}

// OrphanError is returned when a mutation would leave an occupied node
// without an occupied parent.
type OrphanError struct {
	Index   int
	message string
}

func (err *OrphanError) Error() string {
	return fmt.Sprintf("kary: node %d: %s", err.Index, err.message)
}

// DegreeError is returned when grafting between trees of different degree.
type DegreeError struct {
	Want int
	Got  int
}

func (err *DegreeError) Error() string {
	return fmt.Sprintf("kary: cannot hang a tree of degree %d onto a tree of degree %d", err.Got, err.Want)
}

// CapacityError is returned when growing a tree by another level would take
// it past MaxCap slots.
type CapacityError struct {
	Height int
	Limit  int
}

func (err *CapacityError) Error() string {
	return fmt.Sprintf("kary: growing to %d levels exceeds %d slots", err.Height, err.Limit)
}
