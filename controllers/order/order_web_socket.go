package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// orderFeed tracks websocket connections per shop owner.
type orderFeed struct {
	mu    sync.Mutex
	conns map[string][]*websocket.Conn
}

var feed = &orderFeed{conns: make(map[string][]*websocket.Conn)}

func (f *orderFeed) add(userID string, conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conns[userID] = append(f.conns[userID], conn)
}

func (f *orderFeed) remove(userID string, conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	remaining := f.conns[userID][:0]
	for _, c := range f.conns[userID] {
		if c != conn {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == 0 {
		delete(f.conns, userID)
	} else {
		f.conns[userID] = remaining
	}
}

// OrderFeedHandler upgrades the merchant's connection and keeps it registered
// until the peer goes away.
func OrderFeedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.SessionUserID(c)

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		feed.add(userID, conn)
		defer feed.remove(userID, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}

// broadcastNewOrder pushes a freshly created order to the shop owner's open
// connections. Write failures are ignored; the notification row is the
// durable record.
func broadcastNewOrder(ownerID string, order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	feed.mu.Lock()
	defer feed.mu.Unlock()
	for _, conn := range feed.conns[ownerID] {
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}
}
