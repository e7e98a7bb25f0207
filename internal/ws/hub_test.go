package ws

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count never reached %d, at %d", want, hub.ClientCount())
}

func recvPayload(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case payload := <-c.send:
		return payload
	case <-time.After(2 * time.Second):
		t.Fatal("no payload delivered")
		return nil
	}
}

func TestHubDeliversToEveryConnectionOfUser(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	owner := uuid.New()
	other := uuid.New()

	first := NewClient(hub, nil, owner)
	second := NewClient(hub, nil, owner)
	stranger := NewClient(hub, nil, other)
	hub.Register(first)
	hub.Register(second)
	hub.Register(stranger)
	waitForClients(t, hub, 3)

	hub.Send(owner, []byte(`{"event":"notification"}`))

	if got := string(recvPayload(t, first)); got != `{"event":"notification"}` {
		t.Errorf("first connection got %q", got)
	}
	if got := string(recvPayload(t, second)); got != `{"event":"notification"}` {
		t.Errorf("second connection got %q", got)
	}

	select {
	case payload := <-stranger.send:
		t.Errorf("foreign user received %q", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil, uuid.New())
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.Unregister(client)
	waitForClients(t, hub, 0)

	select {
	case _, open := <-client.send:
		if open {
			t.Error("send channel delivered instead of closing")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send channel never closed")
	}
}

func TestHubSendToUnknownUserIsNoop(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	hub.Send(uuid.New(), []byte("x"))
	// Nothing to assert beyond not blocking or panicking.
	if hub.ClientCount() != 0 {
		t.Fatalf("phantom clients: %d", hub.ClientCount())
	}
}
