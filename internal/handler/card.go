package handler

import (
	"fmt"
	"strings"

	"flashcards/internal/domain"
	"flashcards/internal/navigator"

	tele "gopkg.in/telebot.v3"
)

// cardView is a snapshot of a deck taken under the session lock
type cardView struct {
	Entry   domain.Entry
	Flipped bool
	Counter string
	Len     int
}

func viewOf(nav *navigator.Navigator) cardView {
	return cardView{
		Entry:   nav.Current(),
		Flipped: nav.Flipped(),
		Counter: nav.Counter(),
		Len:     nav.Len(),
	}
}

// renderCard builds the message text and keyboard for v
func renderCard(v cardView) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	if v.Flipped {
		fmt.Fprintf(&b, "📖 %s\n\n%s", v.Entry.Word, v.Entry.Definition)
		if v.Entry.Translation != "" {
			fmt.Fprintf(&b, "\n\n%s", v.Entry.Translation)
		}
		if line := v.Entry.SynonymsLine(); line != "" {
			fmt.Fprintf(&b, "\n\n%s", line)
		}
	} else {
		fmt.Fprintf(&b, "📝 %s", v.Entry.Word)
	}
	fmt.Fprintf(&b, "\n\n%s", v.Counter)

	flipText := "Show Definition"
	if v.Flipped {
		flipText = "Show Word"
	}

	markup := &tele.ReplyMarkup{}
	flip := markup.Data(flipText, btnFlip.Unique)

	// one card: nothing to move to
	var nav tele.Row
	if v.Len > 1 {
		nav = markup.Row(btnPrev, flip, btnNext)
	} else {
		nav = markup.Row(flip)
	}
	markup.Inline(
		nav,
		markup.Row(btnShuffle, btnPronounce),
	)

	return b.String(), markup
}

// renderError replaces the card when the vocabulary could not be loaded
func renderError(message string) string {
	return "Error\n\n" + message
}
