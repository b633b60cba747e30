package components

import "github.com/yohamta/donburi"

// ChatLine is one rendered chat entry. System lines carry errors and
// status, styled differently from player text.
type ChatLine struct {
	From   string
	Text   string
	System bool
}

// ChatData is the singleton chat panel state.
type ChatData struct {
	Lines     []ChatLine
	Open      bool
	Recording bool
}

// Append adds a line, trimming the backlog to max.
func (c *ChatData) Append(line ChatLine, max int) {
	c.Lines = append(c.Lines, line)
	if max > 0 && len(c.Lines) > max {
		c.Lines = c.Lines[len(c.Lines)-max:]
	}
}

var Chat = donburi.NewComponentType[ChatData]()
