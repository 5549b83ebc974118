package session

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/event"
)

func newTestServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub()
	srv := NewServer(hub, ServerConfig{Logger: log.New(io.Discard, "", 0)})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return hub, ts
}

func wsURL(ts *httptest.Server, enc string) string {
	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	if enc != "" {
		u += "?enc=" + enc
	}
	return u
}

type testConn struct {
	t     *testing.T
	conn  *websocket.Conn
	codec Codec
}

func dial(t *testing.T, ts *httptest.Server, codec Codec) *testConn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, codec.Name()), nil)
	if resp != nil {
		resp.Body.Close()
	}
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return &testConn{t: t, conn: conn, codec: codec}
}

func (c *testConn) send(msgType string, payload any) {
	c.t.Helper()
	data, err := c.codec.Encode(msgType, payload)
	if err != nil {
		c.t.Fatalf("encode: %v", err)
	}
	if err := c.conn.WriteMessage(c.codec.FrameType(), data); err != nil {
		c.t.Fatalf("write: %v", err)
	}
}

func (c *testConn) expect(msgType string, out any) {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	frameType, data, err := c.conn.ReadMessage()
	if err != nil {
		c.t.Fatalf("read %s: %v", msgType, err)
	}
	if frameType != c.codec.FrameType() {
		c.t.Fatalf("frame type %d, want %d", frameType, c.codec.FrameType())
	}
	env, err := c.codec.Decode(data)
	if err != nil {
		c.t.Fatalf("decode: %v", err)
	}
	if env.Type != msgType {
		c.t.Fatalf("got %q, want %q", env.Type, msgType)
	}
	if err := c.codec.DecodePayload(env, out); err != nil {
		c.t.Fatalf("decode %s payload: %v", msgType, err)
	}
}

func TestJoinBroadcastsToSession(t *testing.T) {
	hub, ts := newTestServer(t)
	alice := dial(t, ts, JSONCodec{})
	bob := dial(t, ts, MsgpackCodec{})

	alice.send(MsgJoinSession, JoinSession{SessionID: "party", PlayerName: "Alice"})
	var joined PlayerJoined
	alice.expect(MsgPlayerJoined, &joined)
	if joined.PlayerName != "Alice" || joined.TotalPlayers != 1 || !strings.HasPrefix(joined.PlayerID, "player-") {
		t.Fatalf("first join = %+v", joined)
	}

	bob.send(MsgJoinSession, JoinSession{SessionID: "party", PlayerName: "Bob"})
	for _, c := range []*testConn{alice, bob} {
		var got PlayerJoined
		c.expect(MsgPlayerJoined, &got)
		if got.PlayerName != "Bob" || got.TotalPlayers != 2 {
			t.Fatalf("%s client got %+v", c.codec.Name(), got)
		}
	}

	info, ok := hub.Session("party")
	if !ok || info.Phase != InitialPhase || len(info.Players) != 2 {
		t.Fatalf("session = %+v, %v", info, ok)
	}
}

func TestPhaseUpdateBroadcasts(t *testing.T) {
	hub, ts := newTestServer(t)
	host := dial(t, ts, JSONCodec{})
	guest := dial(t, ts, JSONCodec{})

	var joined PlayerJoined
	host.send(MsgJoinSession, JoinSession{SessionID: "s1", PlayerName: "Host"})
	host.expect(MsgPlayerJoined, &joined)
	guest.send(MsgJoinSession, JoinSession{SessionID: "s1", PlayerName: "Guest"})
	host.expect(MsgPlayerJoined, &joined)
	guest.expect(MsgPlayerJoined, &joined)

	host.send(MsgUpdateGamePhase, UpdateGamePhase{SessionID: "s1", Phase: "playing"})
	for _, c := range []*testConn{host, guest} {
		var got PhaseChanged
		c.expect(MsgPhaseChanged, &got)
		if got.Phase != "playing" {
			t.Fatalf("phase = %q, want playing", got.Phase)
		}
	}
	if info, _ := hub.Session("s1"); info.Phase != "playing" {
		t.Fatalf("stored phase = %q", info.Phase)
	}
}

func TestErrorsReportedToSender(t *testing.T) {
	_, ts := newTestServer(t)
	c := dial(t, ts, JSONCodec{})

	tests := []struct {
		name    string
		msgType string
		payload any
		want    string
	}{
		{"unknown session", MsgUpdateGamePhase, UpdateGamePhase{SessionID: "nope", Phase: "x"}, "unknown session"},
		{"missing session id", MsgJoinSession, JoinSession{PlayerName: "x"}, "sessionId"},
		{"unknown type", "dance", struct{}{}, "unknown message type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.send(tt.msgType, tt.payload)
			var ge GameError
			c.expect(MsgGameError, &ge)
			if !strings.Contains(ge.Message, tt.want) {
				t.Fatalf("message %q does not mention %q", ge.Message, tt.want)
			}
		})
	}
}

func TestDisconnectMarksPlayer(t *testing.T) {
	hub, ts := newTestServer(t)
	c := dial(t, ts, JSONCodec{})
	c.send(MsgJoinSession, JoinSession{SessionID: "s2", PlayerName: "Leaver"})
	var joined PlayerJoined
	c.expect(MsgPlayerJoined, &joined)

	c.conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		info, _ := hub.Session("s2")
		if len(info.Players) == 1 && !info.Players[0].Connected {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("player still connected after close")
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(string(body), "ok") {
		t.Fatalf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestPublisherForwardsPhaseChanges(t *testing.T) {
	hub, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pub, err := Dial(ctx, wsURL(ts, ""), "game", "Console", MsgpackCodec{})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer pub.Close()

	d := event.NewDispatcher()
	d.Subscribe(event.PhaseChanged, pub)
	d.Dispatch(event.Event{Type: event.ShotFired})
	d.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseChange{From: component.PhasePreGame, To: component.PhaseCountdown}})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if info, ok := hub.Session("game"); ok && info.Phase == "countdown" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("phase change never reached the hub")
}

func TestCodecs(t *testing.T) {
	for _, codec := range []Codec{JSONCodec{}, MsgpackCodec{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			if _, err := codec.Decode(nil); !errors.Is(err, ErrEmptyMessage) {
				t.Fatalf("Decode(nil) = %v, want ErrEmptyMessage", err)
			}
			if _, err := codec.Encode("", PhaseChanged{}); err == nil {
				t.Fatal("empty message type accepted")
			}
		})
	}
	if CodecFor("msgpack").Name() != "msgpack" || CodecFor("").Name() != "json" || CodecFor("xml").Name() != "json" {
		t.Fatal("CodecFor picked the wrong codec")
	}
}
