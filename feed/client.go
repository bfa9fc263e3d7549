package feed

import (
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/ws"
)

// Client is an explicit subscription to a course's order stream: dial on
// dashboard open, Close on leave. If the connection drops, Listen returns;
// the caller re-dials and does a full re-fetch — the stream itself never
// backfills missed events.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to a hub at baseURL (e.g. ws://host:8000), authenticating
// with the staff JWT via the query string.
func Dial(baseURL string, courseID uint, token string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	u.Path = fmt.Sprintf("/ws/orders/%d", courseID)
	u.RawQuery = url.Values{"token": {token}}.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Listen reads events into f until the connection fails or Close is called,
// returning the read error. onEvent, when non-nil, fires after each event is
// applied.
func (c *Client) Listen(f *Feed, onEvent func(ws.OrderEvent)) error {
	for {
		var ev ws.OrderEvent
		if err := c.conn.ReadJSON(&ev); err != nil {
			return err
		}
		f.Apply(ev)
		if onEvent != nil {
			onEvent(ev)
		}
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}
