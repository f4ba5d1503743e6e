package domain

import "errors"

var (
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidLevel        = errors.New("invalid review level")
	ErrReviewerNotAssigned = errors.New("no reviewer assigned at this level")
)
