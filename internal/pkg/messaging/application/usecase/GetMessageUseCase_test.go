package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
)

func TestGetMessageReturnsHistory(t *testing.T) {
	repo := newMemRepo()
	convID, err := repo.CreateConversation(context.Background(), messaging.Conversation{
		Participants: [2]string{"A1", "B1"},
	})
	require.NoError(t, err)
	for _, text := range []string{"one", "two", "three"} {
		_, err := repo.SaveMessage(context.Background(), messaging.Message{ConversationID: convID, Sender: "A1", Text: text})
		require.NoError(t, err)
	}

	uc := NewGetMessageUseCase(repo)

	// The pair resolves to the same conversation from either side.
	for _, in := range []GetMessageInput{
		{UserID: "A1", OtherUserID: "B1"},
		{UserID: "B1", OtherUserID: "A1"},
	} {
		msgs, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		require.Equal(t, "one", msgs[0].Text)
		require.Equal(t, "three", msgs[2].Text)
	}
}

func TestGetMessageUnknownPair(t *testing.T) {
	uc := NewGetMessageUseCase(newMemRepo())

	_, err := uc.Execute(context.Background(), GetMessageInput{UserID: "A1", OtherUserID: "B1"})
	require.ErrorIs(t, err, messaging.ErrConversationNotFound)
}

func TestGetMessageRequiresBothIdentities(t *testing.T) {
	uc := NewGetMessageUseCase(newMemRepo())

	_, err := uc.Execute(context.Background(), GetMessageInput{UserID: "A1"})
	require.Error(t, err)
}
