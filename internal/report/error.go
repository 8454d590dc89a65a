package report

import "errors"

var (
	ErrMissingDate             = errors.New("check-in and check-out dates must be provided")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
)
