package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

// wsConn adapts a gorilla connection to the hub's SessionConn interface.
// All frames on this protocol are JSON text messages.
type wsConn struct {
	conn *websocket.Conn
}

func (c wsConn) Write(data []byte) error {
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c wsConn) SetWriteDeadline(deadline time.Time) error {
	return c.conn.SetWriteDeadline(deadline)
}

func (c wsConn) Close() error {
	return c.conn.Close()
}
