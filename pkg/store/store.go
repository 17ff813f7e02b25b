package store

import "errors"

// ErrGameNotFound is returned when no game is stored under the id
var ErrGameNotFound = errors.New("game not found")

// ErrGameExists is returned when a game is created twice
var ErrGameExists = errors.New("game already exists")
