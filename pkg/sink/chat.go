package sink

import "fmt"

const defaultChatEndpoint = "https://api.hipchat.com/v1"

// Chat denotes the chat-room notification service. It sits behind an
// explicit enable flag in the monitor configuration: the display heartbeat
// superseded room messages, but the wiring remains available for rooms that
// still want them
type Chat struct {
	endpoint string
	apiKey   string
	roomID   int
}

// NewChat instantiates a new Chat sink for the given room, executing
// functional options, if any
func NewChat(apiKey string, roomID int, options ...func(*Chat)) *Chat {

	c := &Chat{
		endpoint: defaultChatEndpoint,
		apiKey:   apiKey,
		roomID:   roomID,
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(c)
	}

	return c
}

// Notify posts a room message summarizing availability and weight
func (c *Chat) Notify(available, total, weight, maxWeight int) error {

	if c.apiKey == "" {
		return fmt.Errorf("chat API key not configured")
	}

	body := struct {
		RoomID  int    `json:"room_id"`
		From    string `json:"from"`
		Message string `json:"message"`
		Color   string `json:"color"`
	}{
		RoomID:  c.roomID,
		From:    fmt.Sprintf("%d / %d", available, total),
		Message: fmt.Sprintf("%d / %d", weight, maxWeight),
		Color:   "random",
	}

	url := fmt.Sprintf("%s/rooms/message?auth_token=%s", c.endpoint, c.apiKey)
	return postJSON(url, nil, body)
}
