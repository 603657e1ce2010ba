package game

import "github.com/getawaygame/getaway/pkg/game/constants"

type hudMessage struct {
	text string
	ttl  float64
}

// hudLog is a small queue of transient on-screen messages. Oldest
// messages fall off when the queue is full or their time is up.
type hudLog struct {
	messages []hudMessage
}

func newHUDLog() *hudLog {
	return &hudLog{}
}

func (h *hudLog) Push(text string) {
	h.messages = append(h.messages, hudMessage{text: text, ttl: constants.HUDMessageTTL})
	if len(h.messages) > constants.HUDMessageLimit {
		h.messages = h.messages[len(h.messages)-constants.HUDMessageLimit:]
	}
}

// Update ages the queued messages and drops the expired ones.
func (h *hudLog) Update(deltaTime float64) {
	kept := h.messages[:0]
	for _, message := range h.messages {
		message.ttl -= deltaTime
		if message.ttl > 0 {
			kept = append(kept, message)
		}
	}
	h.messages = kept
}

// Texts returns the visible message texts, oldest first.
func (h *hudLog) Texts() []string {
	texts := make([]string, 0, len(h.messages))
	for _, message := range h.messages {
		texts = append(texts, message.text)
	}
	return texts
}
