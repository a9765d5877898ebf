package messaging

import "errors"

// Domain-level errors for messaging behaviors.
var (
	ErrMissingIdentity      = errors.New("messaging: conversation id and sender are required")
	ErrEmptyMessage         = errors.New("messaging: message must contain text or an image")
	ErrNotParticipant       = errors.New("messaging: user is not a participant in the conversation")
	ErrConversationNotFound = errors.New("messaging: conversation not found")
	ErrSelfConversation     = errors.New("messaging: sender and recipient must differ")
)
