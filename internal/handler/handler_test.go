package handler

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"flashcards/internal/domain"
	"flashcards/internal/input"
	"flashcards/internal/navigator"
	"flashcards/internal/speech"
	"flashcards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUser = int64(123)

func newTestHandler(loader VocabularyLoader, engine speech.Engine) *Handler {
	h := NewHandler(nil, loader, engine, testutil.NewTestLogger())
	h.newNavigator = func() *navigator.Navigator {
		return navigator.NewWithRand(rand.New(rand.NewSource(1)))
	}
	return h
}

func TestHandler_StartSession(t *testing.T) {
	tests := []struct {
		name          string
		mockEntries   []domain.Entry
		mockError     error
		expectedError bool
	}{
		{
			name:        "loaded",
			mockEntries: testutil.NewTestEntries(3),
		},
		{
			name:          "load error",
			mockError:     &domain.DataLoadError{Path: "/words.json", Status: 500},
			expectedError: true,
		},
		{
			name:          "empty vocabulary",
			mockEntries:   []domain.Entry{},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := new(testutil.MockVocabularyLoader)
			loader.On("Load", mock.Anything).Return(tt.mockEntries, tt.mockError)

			h := newTestHandler(loader, nil)
			s, err := h.startSession(context.Background(), testUser)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, s)
				assert.False(t, h.HasSession(testUser))
			} else {
				assert.NoError(t, err)
				assert.True(t, h.HasSession(testUser))
				assert.Equal(t, 0, s.nav.Index())
			}
			loader.AssertExpectations(t)
		})
	}
}

func TestHandler_FailedReloadDropsDeck(t *testing.T) {
	loader := new(testutil.MockVocabularyLoader)
	loader.On("Load", mock.Anything).Return(testutil.NewTestEntries(3), nil).Once()
	loader.On("Load", mock.Anything).Return(nil, errors.New("offline")).Once()

	h := newTestHandler(loader, nil)
	_, err := h.startSession(context.Background(), testUser)
	require.NoError(t, err)

	_, err = h.startSession(context.Background(), testUser)

	assert.Error(t, err)
	assert.False(t, h.HasSession(testUser))
	_, ok := h.perform(testUser, input.Next)
	assert.False(t, ok)
}

func TestHandler_Perform(t *testing.T) {
	loader := new(testutil.MockVocabularyLoader)
	loader.On("Load", mock.Anything).Return(testutil.NewTestEntries(3), nil)

	h := newTestHandler(loader, nil)
	_, err := h.startSession(context.Background(), testUser)
	require.NoError(t, err)

	view, ok := h.perform(testUser, input.Next)
	require.True(t, ok)
	assert.Equal(t, "word1", view.Entry.Word)
	assert.Equal(t, "2 / 3", view.Counter)

	view, _ = h.perform(testUser, input.Flip)
	assert.True(t, view.Flipped)

	view, _ = h.perform(testUser, input.Next)
	assert.Equal(t, "word2", view.Entry.Word)
	assert.False(t, view.Flipped)

	view, _ = h.perform(testUser, input.Next)
	assert.Equal(t, "1 / 3", view.Counter)

	view, _ = h.perform(testUser, input.Previous)
	assert.Equal(t, "3 / 3", view.Counter)

	view, _ = h.perform(testUser, input.Shuffle)
	assert.Equal(t, "1 / 3", view.Counter)
	assert.Equal(t, 3, view.Len)
}

func TestHandler_SessionsAreIndependent(t *testing.T) {
	loader := new(testutil.MockVocabularyLoader)
	loader.On("Load", mock.Anything).Return(testutil.NewTestEntries(3), nil)

	h := newTestHandler(loader, nil)
	_, err := h.startSession(context.Background(), 1)
	require.NoError(t, err)
	_, err = h.startSession(context.Background(), 2)
	require.NoError(t, err)

	h.perform(1, input.Next)
	view, _ := h.perform(2, input.None)

	assert.Equal(t, "1 / 3", view.Counter)
}

func TestHandler_PerformWithoutSession(t *testing.T) {
	h := newTestHandler(new(testutil.MockVocabularyLoader), nil)

	_, ok := h.perform(testUser, input.Next)

	assert.False(t, ok)
}

func TestHandler_Pronounce(t *testing.T) {
	loader := new(testutil.MockVocabularyLoader)
	loader.On("Load", mock.Anything).Return(testutil.NewTestEntries(2), nil)

	engine := new(testutil.MockEngine)
	engine.On("Synthesize", mock.Anything, speech.NewUtterance("word1")).Return([]byte("RIFF"), nil)

	h := newTestHandler(loader, engine)
	_, err := h.startSession(context.Background(), testUser)
	require.NoError(t, err)
	h.perform(testUser, input.Next)

	word, audio, err := h.pronounce(context.Background(), testUser)

	assert.NoError(t, err)
	assert.Equal(t, "word1", word)
	assert.Equal(t, []byte("RIFF"), audio)
	engine.AssertExpectations(t)
}

func TestHandler_PronounceWithoutEngine(t *testing.T) {
	loader := new(testutil.MockVocabularyLoader)
	loader.On("Load", mock.Anything).Return(testutil.NewTestEntries(2), nil)

	h := newTestHandler(loader, nil)
	_, err := h.startSession(context.Background(), testUser)
	require.NoError(t, err)

	_, _, err = h.pronounce(context.Background(), testUser)

	assert.ErrorIs(t, err, speech.ErrUnavailable)
}
