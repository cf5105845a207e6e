package client

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/akulinin/duochat/internal/core"
)

// View is the presentation collaborator the poller reconciles into. The
// poller does not diff; views are free to skip repaints themselves.
type View interface {
	// ShowLive renders the current live message and the active speaker.
	ShowLive(text string, speaker core.SpeakerID)

	// ShowHistory renders the full history, most recent first.
	ShowHistory(lines []string)
}

// TermView renders the exchange to a terminal writer. It repaints only when
// the content actually changed since the last render, and marks the speaker
// switch explicitly the way the reference client swaps the active portrait.
type TermView struct {
	mu          sync.Mutex
	w           io.Writer
	lastText    string
	lastSpeaker core.SpeakerID
	lastHistory string
	rendered    bool
}

// NewTermView creates a terminal view writing to w.
func NewTermView(w io.Writer) *TermView {
	return &TermView{w: w, lastSpeaker: core.DefaultSpeaker}
}

func (v *TermView) ShowLive(text string, speaker core.SpeakerID) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.rendered && text == v.lastText && speaker == v.lastSpeaker {
		return
	}
	if speaker != v.lastSpeaker {
		fmt.Fprintf(v.w, "* speaker %d is now talking\n", speaker)
	}
	if text != "" {
		fmt.Fprintf(v.w, "> %s\n", text)
	}
	v.lastText = text
	v.lastSpeaker = speaker
	v.rendered = true
}

func (v *TermView) ShowHistory(lines []string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	joined := strings.Join(lines, "\n")
	if joined == v.lastHistory {
		return
	}
	v.lastHistory = joined

	fmt.Fprintf(v.w, "--- history (%d messages) ---\n", len(lines))
	if joined != "" {
		fmt.Fprintln(v.w, joined)
	}
}
