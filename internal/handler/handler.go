package handler

import (
	"context"
	"sync"
	"time"

	"flashcards/internal/domain"
	"flashcards/internal/input"
	"flashcards/internal/middleware"
	"flashcards/internal/navigator"
	"flashcards/internal/speech"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// requestTimeout bounds vocabulary loads and speech synthesis
const requestTimeout = 15 * time.Second

// VocabularyLoader loads the word list for a new session
type VocabularyLoader interface {
	Load(ctx context.Context) ([]domain.Entry, error)
}

// session is one user's deck. The mutex serializes input from that user.
type session struct {
	mu      sync.Mutex
	nav     *navigator.Navigator
	speaker *speech.Speaker
}

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	loader     VocabularyLoader
	engine     speech.Engine
	dispatcher *input.Dispatcher
	logger     *zap.Logger

	// per-user decks, created by /start
	sessions   map[int64]*session
	sessionMux sync.RWMutex

	newNavigator func() *navigator.Navigator
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	loader VocabularyLoader,
	engine speech.Engine,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		loader:       loader,
		engine:       engine,
		dispatcher:   input.NewDispatcher(),
		logger:       logger,
		sessions:     make(map[int64]*session),
		newNavigator: navigator.New,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Everything else needs a loaded deck
	deck := h.bot.Group()
	deck.Use(middleware.SessionRequired(h, h.logger))

	// Text messages act as key presses
	deck.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	deck.Handle(&btnPrev, h.handleButton(input.Previous))
	deck.Handle(&btnNext, h.handleButton(input.Next))
	deck.Handle(&btnFlip, h.handleButton(input.Flip))
	deck.Handle(&btnShuffle, h.handleButton(input.Shuffle))
	deck.Handle(&btnPronounce, h.handlePronounce)

	// Generic callback handler for buttons whose Unique didn't come through
	deck.Handle(tele.OnCallback, h.handleCallback)
}

// HasSession reports whether userID has a loaded deck
func (h *Handler) HasSession(userID int64) bool {
	return h.session(userID) != nil
}

func (h *Handler) session(userID int64) *session {
	h.sessionMux.RLock()
	defer h.sessionMux.RUnlock()
	return h.sessions[userID]
}

// startSession loads the vocabulary into a fresh deck for userID.
// On failure any previous deck is dropped.
func (h *Handler) startSession(ctx context.Context, userID int64) (*session, error) {
	entries, err := h.loader.Load(ctx)
	if err == nil {
		nav := h.newNavigator()
		if err = nav.Load(entries); err == nil {
			s := &session{nav: nav, speaker: speech.NewSpeaker(h.engine)}
			h.replaceSession(userID, s)
			return s, nil
		}
	}

	h.replaceSession(userID, nil)
	return nil, err
}

func (h *Handler) replaceSession(userID int64, s *session) {
	h.sessionMux.Lock()
	old := h.sessions[userID]
	if s == nil {
		delete(h.sessions, userID)
	} else {
		h.sessions[userID] = s
	}
	h.sessionMux.Unlock()

	if old != nil {
		old.speaker.Cancel()
	}
}

// perform applies a to the user's deck and returns the card to show
func (h *Handler) perform(userID int64, a input.Action) (cardView, bool) {
	s := h.session(userID)
	if s == nil {
		return cardView{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h.dispatcher.Dispatch(s.nav, a)
	return viewOf(s.nav), true
}

// pronounce synthesizes the current word of the user's deck
func (h *Handler) pronounce(ctx context.Context, userID int64) (string, []byte, error) {
	s := h.session(userID)
	if s == nil {
		return "", nil, navigator.ErrEmptyData
	}

	s.mu.Lock()
	word := s.nav.Current().Word
	s.mu.Unlock()

	audio, err := s.speaker.Speak(ctx, word)
	return word, audio, err
}

// Inline keyboard buttons
var (
	btnPrev = tele.Btn{
		Unique: "prev",
		Text:   "⬅️ Previous",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "Next ➡️",
	}
	btnFlip = tele.Btn{
		Unique: "flip",
		Text:   "Show Definition",
	}
	btnShuffle = tele.Btn{
		Unique: "shuffle",
		Text:   "🔀 Shuffle",
	}
	btnPronounce = tele.Btn{
		Unique: "pronounce",
		Text:   "🔊 Pronounce",
	}
)

// buttonActions maps button uniques to deck actions
var buttonActions = map[string]input.Action{
	btnPrev.Unique:      input.Previous,
	btnNext.Unique:      input.Next,
	btnFlip.Unique:      input.Flip,
	btnShuffle.Unique:   input.Shuffle,
	btnPronounce.Unique: input.Pronounce,
}
