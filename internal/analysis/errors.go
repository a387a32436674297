package analysis

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrEmptyJobDescription = errors.New("job description is required")
	ErrUnknownSkill        = errors.New("skill not present in analysis")
	ErrInvalidConfidence   = errors.New("confidence must be \"know\" or \"practice\"")
)
