package repository

import "errors"

var (
	// ErrStateNotFound is returned when a chat has no reference list yet.
	ErrStateNotFound = errors.New("reference list not found")
	// ErrSettingsNotFound is returned when a chat never changed its settings.
	ErrSettingsNotFound = errors.New("chat settings not found")
)
