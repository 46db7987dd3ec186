package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osamah-s7s/virtualmouse/internal/capture"
	"github.com/osamah-s7s/virtualmouse/internal/detector"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// LandmarksHandler broadcasts real-time hand landmarks and finger states
// via WebSocket, for tuning pinch thresholds against what the detector
// actually sees.
type LandmarksHandler struct {
	detector  detector.Detector
	camera    capture.Camera
	clients   map[*websocket.Conn]bool
	mu        sync.RWMutex
	done      chan struct{}
	closeOnce sync.Once
}

// NewLandmarksHandler creates a new LandmarksHandler with the given
// detector and camera. Close must be called to stop the broadcast loop.
func NewLandmarksHandler(d detector.Detector, c capture.Camera) *LandmarksHandler {
	h := &LandmarksHandler{
		detector: d,
		camera:   c,
		clients:  make(map[*websocket.Conn]bool),
		done:     make(chan struct{}),
	}
	go h.broadcast()
	return h
}

// Close stops the broadcast loop. Safe to call more than once.
func (h *LandmarksHandler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *LandmarksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// landmarksMessage is one broadcast payload.
type landmarksMessage struct {
	Hands     []detector.HandLandmarks `json:"hands"`
	Fingers   *detector.FingerVector   `json:"fingers,omitempty"`
	Timestamp int64                    `json:"timestamp"`
}

// broadcast sends landmark data to all connected clients.
func (h *LandmarksHandler) broadcast() {
	ticker := time.NewTicker(66 * time.Millisecond) // ~15 FPS
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
		}

		h.mu.RLock()
		idle := len(h.clients) == 0
		h.mu.RUnlock()
		if idle {
			continue
		}

		frame, err := h.camera.ReadFrame()
		if err != nil {
			continue
		}

		width, height := frame.Cols(), frame.Rows()
		hands, err := h.detector.Detect(frame)
		frame.Close()
		if err != nil {
			continue
		}

		message := landmarksMessage{
			Hands:     hands,
			Timestamp: time.Now().UnixMilli(),
		}
		if len(hands) > 0 {
			fingers := hands[0].PixelFrame(width, height).FingersUp()
			message.Fingers = &fingers
		}

		msg, err := json.Marshal(message)
		if err != nil {
			continue
		}

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}
