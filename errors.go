package s2cell

import (
	"errors"
	"fmt"

	"github.com/owlpinetech/s2cell/s2"
)

var (
	ErrInvalidLevel  = errors.New("cell level must be between 0 and 30")
	ErrUnknownFormat = errors.New("unknown output format")
)

type LocationNotSupportedError struct {
	Indexer  string
	Location Location
}

func NewLocationNotSupportedError(indexer string, location Location) *LocationNotSupportedError {
	return &LocationNotSupportedError{
		Indexer:  indexer,
		Location: location,
	}
}

func (l LocationNotSupportedError) Error() string {
	return fmt.Sprintf("location %v (%T) not supported by indexer %s", l.Location, l.Location, l.Indexer)
}

type LocationOutOfBoundsError struct {
	Location Location
}

func NewLocationOutOfBoundsError(location Location) LocationOutOfBoundsError {
	return LocationOutOfBoundsError{Location: location}
}

func (l LocationOutOfBoundsError) Error() string {
	return fmt.Sprintf("location %v was out of bounds", l.Location)
}

// InvalidCellError reports a cell id that does not name any cell.
type InvalidCellError struct {
	Cell s2.CellID
}

func NewInvalidCellError(cell s2.CellID) InvalidCellError {
	return InvalidCellError{Cell: cell}
}

func (c InvalidCellError) Error() string {
	return fmt.Sprintf("cell id %#016x is not valid", uint64(c.Cell))
}
