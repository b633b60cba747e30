package messages

// ChatMessage is one line of text chat, either direction.
type ChatMessage struct {
	From string
	Text string
}

// AudioStart opens a streamed voice clip.
type AudioStart struct{}

// AudioChunk carries raw audio bytes. The final chunk may instead carry the
// voice.Sentinel marker inline, closing the stream without an AudioEnd.
type AudioChunk struct {
	Data []byte
}

// AudioEnd closes a streamed voice clip.
type AudioEnd struct{}

// Error is a server-reported failure surfaced in the chat panel.
type Error struct {
	Content string
}
