package sync

import (
	"bufio"
	"errors"
	"log"
	"net"
	"sync"
)

// Server accepts raw TCP sync clients. Clients only listen; anything they
// send is consumed and dropped.
type Server struct {
	Addr string
	Hub  *Hub

	mu sync.Mutex
	ln net.Listener
}

func NewServer(addr string, hub *Hub) *Server {
	return &Server{Addr: addr, Hub: hub}
}

func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	log.Printf("[tcp-sync] listening on %s", s.Addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			continue
		}

		s.Hub.Add(conn)
		s.Hub.Welcome(conn)
		log.Printf("[tcp-sync] client connected: %s", conn.RemoteAddr())

		go func(c net.Conn) {
			defer func() {
				s.Hub.Remove(c)
				log.Printf("[tcp-sync] client disconnected: %s", c.RemoteAddr())
			}()

			sc := bufio.NewScanner(c)
			for sc.Scan() {
				// ignore incoming lines
			}
		}(conn)
	}
}

// Close stops the accept loop. Existing client connections stay open until
// they drop on their own.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}
