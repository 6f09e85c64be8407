package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"Terrace/terrain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1 << 16,
}

// liveFrame is pushed to the client after every finished generation.
type liveFrame struct {
	Type      string    `json:"type"`
	SessionID string    `json:"sessionId"`
	Version   uint64    `json:"version,omitempty"`
	Seed      int64     `json:"seed,omitempty"`
	Width     int       `json:"width,omitempty"`
	Depth     int       `json:"depth,omitempty"`
	Heights   []float32 `json:"heights,omitempty"`
	Message   string    `json:"message,omitempty"`
}

func wsRead(sock *websocket.Conn) ([]byte, error) {
	mtype, message, err := sock.ReadMessage()
	if err != nil {
		return nil, err
	}
	if mtype != websocket.TextMessage {
		return nil, errors.New("unexpected websocket message type")
	}
	return message, nil
}

func wsSend(sock *websocket.Conn, data any) error {
	message, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return sock.WriteMessage(websocket.TextMessage, message)
}

// GetLive handles GET /api/live - a websocket where every text message is a
// params object (fields missing from it keep the configured values) and
// every finished generation is pushed back as a height grid. Requests that
// arrive while a mesh is generating replace each other; only the latest runs.
func (h *TerrainHandler) GetLive(w http.ResponseWriter, r *http.Request) {
	sock, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the response
		log.Printf("Warning: websocket upgrade failed: %v", err)
		return
	}
	defer sock.Close()

	sessionID := uuid.NewString()
	log.Printf("Live session %s opened", sessionID)
	defer log.Printf("Live session %s closed", sessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	regen := terrain.NewRegenerator(h.gen)
	regen.Start(ctx)

	go func() {
		defer cancel()
		for {
			raw, err := wsRead(sock)
			if err != nil {
				return
			}
			p := h.cfg.Params.WithSeed(h.seed)
			if err := json.Unmarshal(raw, &p); err != nil {
				// Reported as a failed generation
				p.VertexCount = 0
			}
			regen.Request(p)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-regen.Updates():
		}

		frame := liveFrame{Type: "mesh", SessionID: sessionID}
		if err := regen.Err(); err != nil {
			frame.Type = "error"
			frame.Message = err.Error()
		} else {
			mesh, version := regen.Current()
			frame.Version = version
			frame.Seed = mesh.Seed
			frame.Width = mesh.Width
			frame.Depth = mesh.Depth
			frame.Heights = mesh.Heights()
		}
		if err := wsSend(sock, frame); err != nil {
			return
		}
	}
}
