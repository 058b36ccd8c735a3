package utils

import "errors"

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrNoActiveGuide    = errors.New("no active guide for this session")
	ErrGuideGeneration  = errors.New("guide generation failed")
	ErrEmptySearchQuery = errors.New("empty search query")
	ErrDatabaseError    = errors.New("database error")
)
