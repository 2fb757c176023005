package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/cardscan/internal/client/client"
	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_MountGuard(t *testing.T) {
	h := newHarness(t, false)
	s := NewListScreen(h.auth, h.cards)

	assert.ErrorIs(t, s.Mount(context.Background()), common.ErrNotAuthenticated)
	assert.Empty(t, h.backend.calls)
}

func TestList_Branches(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		err     error
		state   ListState
		visible string
	}{
		{"populated", `[{"card_id":"c1","name":"Jane","email":"j@x.io"}]`, nil, ListPopulated, "Jane"},
		{"empty", `[]`, nil, ListEmpty, "No cards saved yet."},
		{"non-array", `{"status":500}`, nil, ListEmpty, "No cards saved yet."},
		{"error", ``, &client.HTTPError{StatusCode: 500, Body: "database unavailable"}, ListError, "database unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, true)
			h.backend.lists = [][]byte{[]byte(tt.body)}
			h.backend.listErr = tt.err

			s := NewListScreen(h.auth, h.cards)
			require.NoError(t, s.Mount(context.Background()))
			assert.Equal(t, tt.state, s.State())

			var buf bytes.Buffer
			s.Render(&buf)
			assert.Contains(t, buf.String(), tt.visible)
			if tt.state == ListError {
				assert.NotContains(t, buf.String(), "Name")
			}
		})
	}
}

func TestList_MutationsReload(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, true)
	h.backend.lists = [][]byte{
		[]byte(`[]`),
		[]byte(`[{"card_id":"c1","name":"Jane","email":"j@x.io"}]`),
	}
	s := NewListScreen(h.auth, h.cards)
	require.NoError(t, s.Mount(ctx))
	require.Equal(t, ListEmpty, s.State())

	require.NoError(t, s.Create(ctx, models.CardDraft{Name: "Jane", Email: "j@x.io"}))
	assert.Equal(t, ListPopulated, s.State())
	card, ok := s.Card(1)
	require.True(t, ok)
	assert.Equal(t, "c1", card.CardID)

	card.Name = "Janet"
	require.NoError(t, s.Update(ctx, card))
	require.NoError(t, s.Delete(ctx, "c1"))

	assert.Equal(t, []string{"list", "create", "list", "update", "list", "delete", "list"}, h.backend.calls)
}

func TestList_CreateRequiresNameAndEmail(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, true)
	s := NewListScreen(h.auth, h.cards)
	require.NoError(t, s.Mount(ctx))

	err := s.Create(ctx, models.CardDraft{Name: "X", Email: ""})
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, []string{"list"}, h.backend.calls)
}

func TestList_FailedMutationDoesNotReload(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, true)
	s := NewListScreen(h.auth, h.cards)
	require.NoError(t, s.Mount(ctx))

	h.backend.mutateErr = &client.HTTPError{StatusCode: 400, Body: "bad"}
	assert.Error(t, s.Delete(ctx, "c1"))
	assert.Equal(t, []string{"list", "delete"}, h.backend.calls)

	_, ok := s.Card(99)
	assert.False(t, ok)
}
