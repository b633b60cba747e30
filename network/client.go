package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sablewood/sablewood/shared/messages"
	"github.com/sablewood/sablewood/voice"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	playerID   string
	serverName string
	tickRate   int
	conn       *websocket.Conn

	mapCh chan messages.MapUpdate // size-1 buffered; latest wins

	commandCh chan messages.Command
	chatCh    chan messages.ChatMessage
	audioCh   chan audioEvent
	errorCh   chan messages.Error
}

// audioEvent flattens the three audio messages into one ordered stream so
// the assembler sees start, chunks, and end in arrival order.
type audioEvent struct {
	Start bool
	End   bool
	Data  []byte
}

func NewClient() *Client {
	return &Client{
		state:     StateDisconnected,
		mapCh:     make(chan messages.MapUpdate, 1),
		commandCh: make(chan messages.Command, 32),
		chatCh:    make(chan messages.ChatMessage, 16),
		audioCh:   make(chan audioEvent, 64),
		errorCh:   make(chan messages.Error, 4),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		payload, err := router.Serialize(messages.Hello{
			Version:    version,
			PlayerName: playerName,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to serialize hello: %w", err))
			return
		}

		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()

		if conn != nil {
			if err := conn.Write(context.Background(), websocket.MessageBinary, payload); err != nil {
				c.setError(fmt.Errorf("failed to send hello: %w", err))
			}
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.Welcome) {
		log.Printf("[client] welcome: playerID=%s server=%s tickRate=%d",
			msg.PlayerID, msg.ServerName, msg.TickRate)
		c.mu.Lock()
		c.playerID = msg.PlayerID
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.Rejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, upd messages.MapUpdate) {
		select { // drain stale, push latest
		case <-c.mapCh:
		default:
		}
		c.mapCh <- upd
	})

	router.On(func(_ *router.NetworkClient, cmd messages.Command) {
		select {
		case c.commandCh <- cmd:
		default:
			log.Printf("[client] command backlog full, dropping %q", cmd.Name)
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.ChatMessage) {
		select {
		case c.chatCh <- msg:
		default:
		}
	})

	router.On(func(_ *router.NetworkClient, _ messages.AudioStart) {
		select {
		case c.audioCh <- audioEvent{Start: true}:
		default:
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.AudioChunk) {
		select {
		case c.audioCh <- audioEvent{Data: msg.Data}:
		default:
			log.Printf("[client] audio backlog full, dropping %d bytes", len(msg.Data))
		}
	})

	router.On(func(_ *router.NetworkClient, _ messages.AudioEnd) {
		select {
		case c.audioCh <- audioEvent{End: true}:
		default:
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.Error) {
		select {
		case c.errorCh <- msg:
		default:
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) PlayerID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playerID
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// LatestMapUpdate returns the most recent map payload, or nil. Non-blocking.
func (c *Client) LatestMapUpdate() *messages.MapUpdate {
	select {
	case upd := <-c.mapCh:
		return &upd
	default:
		return nil
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

// SendChat sends a line of text chat.
func (c *Client) SendChat(from, text string) error {
	return c.SendMessage(messages.ChatMessage{From: from, Text: text})
}

// SendVoice streams a recorded blob: start, data, then the inline sentinel
// that marks the final chunk.
func (c *Client) SendVoice(blob []byte) error {
	if err := c.SendMessage(messages.AudioStart{}); err != nil {
		return err
	}
	if err := c.SendMessage(messages.AudioChunk{Data: blob}); err != nil {
		return err
	}
	return c.SendMessage(messages.AudioChunk{Data: []byte(voice.Sentinel)})
}

// DrainCommands returns all pending commands, non-blocking.
func (c *Client) DrainCommands() []messages.Command {
	return drainChan(c.commandCh)
}

// DrainChat returns all pending chat lines, non-blocking.
func (c *Client) DrainChat() []messages.ChatMessage {
	return drainChan(c.chatCh)
}

// DrainAudio feeds pending audio stream events through the assembler in
// arrival order and returns any clips completed by them. Chunk payloads may
// themselves carry JSON control frames interleaved with the raw bytes; those
// steer the assembler instead of being buffered. Non-blocking.
func (c *Client) DrainAudio(asm *voice.Assembler) []*voice.Clip {
	var clips []*voice.Clip
	for _, evt := range drainChan(c.audioCh) {
		switch {
		case evt.Start:
			asm.Start()
		case evt.End:
			if clip := asm.End(); clip != nil {
				clips = append(clips, clip)
			}
		default:
			if kind, content, ok := voice.ParseControl(evt.Data); ok {
				switch kind {
				case voice.ControlAudioStart:
					asm.Start()
				case voice.ControlAudioEnd:
					if clip := asm.End(); clip != nil {
						clips = append(clips, clip)
					}
				case voice.ControlError:
					select {
					case c.errorCh <- messages.Error{Content: content}:
					default:
					}
				}
				continue
			}
			if clip := asm.Chunk(evt.Data); clip != nil {
				clips = append(clips, clip)
			}
		}
	}
	return clips
}

// DrainErrors returns all pending server errors, non-blocking.
func (c *Client) DrainErrors() []messages.Error {
	return drainChan(c.errorCh)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
