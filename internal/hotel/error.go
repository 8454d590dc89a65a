package hotel

import "errors"

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrEmptyRoomNumber   = errors.New("room number must not be empty")
	ErrInvalidRoomType   = errors.New("unknown room type")
	ErrNegativePrice     = errors.New("price per night must not be negative")
	ErrNonPositiveNights = errors.New("number of nights must be positive")
	ErrInvalidStatus     = errors.New("unknown room status")
	ErrInvalidStarRating = errors.New("star rating must be between 1 and 5")
	ErrEmptyField        = errors.New("required field is empty")
)
