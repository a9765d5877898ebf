package usecase

import "errors"

// ErrPersistence wraps storage failures so controllers can map them to 500s
// without inspecting driver errors.
var ErrPersistence = errors.New("post persistence error")
