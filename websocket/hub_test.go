package websocket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func startFeed(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", hub.ServeWS)
	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", want, hub.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestPublishReachesSubscribers(t *testing.T) {
	hub, url := startFeed(t)

	var conns []*websocket.Conn
	for i := 0; i < 2; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		defer conn.Close()
		conns = append(conns, conn)
	}
	waitForClients(t, hub, 2)

	hub.Publish(ServiceCreated, map[string]interface{}{"id": 3, "price": 100})

	for i, conn := range conns {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("client %d read: %v", i, err)
		}
		if msg.Type != ServiceCreated {
			t.Fatalf("client %d: unexpected type %q", i, msg.Type)
		}
		data, ok := msg.Data.(map[string]interface{})
		if !ok || data["id"] != float64(3) {
			t.Fatalf("client %d: unexpected payload %#v", i, msg.Data)
		}
		if msg.Timestamp.IsZero() {
			t.Fatalf("client %d: missing timestamp", i)
		}
	}
}

func TestClosedClientIsUnregistered(t *testing.T) {
	hub, url := startFeed(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}

func TestPublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	go func() {
		// Run is not started: the buffered queue absorbs up to its capacity,
		// and anything beyond is dropped.
		for i := 0; i < 150; i++ {
			hub.Publish(RequestCreated, i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Publish blocked")
	}
}
