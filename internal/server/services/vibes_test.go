package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/vibetracker/internal/common"
	"github.com/dmitrijs2005/vibetracker/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "0b6c5b8e-7c39-4d0a-9a52-2c1c5b6f0e11"

func newVibeService(t *testing.T, v *fakeVibesRepo) *VibeService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	s := NewVibeService(db, &fakeRepoManager{v: v})
	s.newID = func() string { return testID }
	return s
}

func TestVibeService_List(t *testing.T) {
	items := []*models.Vibe{
		{ID: "b", Mood: "calm", CreatedAt: time.Unix(20, 0)},
		{ID: "a", Mood: "happy", CreatedAt: time.Unix(10, 0)},
	}
	s := newVibeService(t, &fakeVibesRepo{listed: items})

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestVibeService_List_StoreError(t *testing.T) {
	s := newVibeService(t, &fakeVibesRepo{listErr: errors.New("boom")})

	_, err := s.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error listing vibes")
	assert.NotErrorIs(t, err, common.ErrorValidation)
}

func TestVibeService_Create(t *testing.T) {
	repo := &fakeVibesRepo{}
	s := newVibeService(t, repo)

	got, err := s.Create(context.Background(), CreateVibeInput{Mood: "happy", Note: ptr("sunny")})
	require.NoError(t, err)
	assert.Equal(t, testID, got.ID)
	assert.Equal(t, "happy", got.Mood)
	require.NotNil(t, got.Note)
	assert.Equal(t, "sunny", *got.Note)
	require.Len(t, repo.created, 1)
	assert.Same(t, got, repo.created[0])
}

func TestVibeService_Create_NilNote(t *testing.T) {
	repo := &fakeVibesRepo{}
	s := newVibeService(t, repo)

	got, err := s.Create(context.Background(), CreateVibeInput{Mood: "ok"})
	require.NoError(t, err)
	assert.Nil(t, got.Note)
}

func TestVibeService_Create_MissingMood(t *testing.T) {
	repo := &fakeVibesRepo{}
	s := newVibeService(t, repo)

	_, err := s.Create(context.Background(), CreateVibeInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.EqualError(t, err, "Mood is required")
	assert.Empty(t, repo.created)
}

func TestVibeService_Create_StoreError(t *testing.T) {
	s := newVibeService(t, &fakeVibesRepo{createErr: errors.New("down")})

	_, err := s.Create(context.Background(), CreateVibeInput{Mood: "happy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating vibe")
}

func TestVibeService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		repoErr   error
		wantErr   error
		wantCalls int
	}{
		{"ok", testID, nil, nil, 1},
		{"missing id", "", nil, common.ErrorValidation, 0},
		{"not a uuid", "nope", nil, common.ErrorNotFound, 0},
		{"unknown id", testID, common.ErrorNotFound, common.ErrorNotFound, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeVibesRepo{deleteErr: tt.repoErr}
			s := newVibeService(t, repo)

			err := s.Delete(context.Background(), tt.id)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Len(t, repo.deleted, tt.wantCalls)
		})
	}
}
