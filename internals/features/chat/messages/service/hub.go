package service

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

/* =======================================================
   CHAT HUB
   Satu goroutine broadcast; koneksi didaftarkan saat WS
   terbuka dan selalu dicabut saat koneksi tertutup.
======================================================= */

type Hub struct {
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[*websocket.Conn]struct{}),
	}
}

// Run menjalankan loop fan-out; panggil sekali sebagai goroutine di startup.
func (h *Hub) Run() {
	log.Println("[INFO] Chat hub aktif")
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = struct{}{}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()

		case payload := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					// koneksi mati akan di-unregister oleh handler-nya sendiri
					log.Printf("[ERROR] Broadcast chat: %v", err)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Register(conn *websocket.Conn)   { h.register <- conn }
func (h *Hub) Unregister(conn *websocket.Conn) { h.unregister <- conn }

// Broadcast mengirim payload ke semua koneksi; drop saat buffer penuh
// supaya request HTTP tidak ikut terblokir.
func (h *Hub) Broadcast(payload []byte) {
	select {
	case h.broadcast <- payload:
	default:
		log.Println("[ERROR] Buffer broadcast chat penuh, pesan realtime dilewati")
	}
}
