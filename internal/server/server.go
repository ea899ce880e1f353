// Package server implements the UDP front end. Datagrams are handled one at
// a time: a request is fully answered before the next one is read.
package server

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sidharth1507/DNS-Server/internal/config"
	"github.com/sidharth1507/DNS-Server/internal/relay"
	"github.com/sidharth1507/DNS-Server/internal/storage"
	"github.com/sidharth1507/DNS-Server/pkg/dnswire"
)

const requestBufferSize = 512

type Server struct {
	config *config.Config
	logger *zap.Logger

	store storage.Store
	relay *relay.Relay

	conn *net.UDPConn

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
	closed  bool
}

// New creates a server from a validated configuration. A nil logger
// disables logging.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		config: cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	if err := s.initStorage(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	s.relay = relay.New(cfg.Upstream.Address, cfg.Upstream.Timeout, logger)

	return s, nil
}

func (s *Server) initStorage() error {
	switch s.config.Storage.Type {
	case "none":
		return nil
	case "memory":
		s.store = storage.NewMemoryStore()
	case "surrealdb":
		store, err := storage.NewSurrealDBStore(s.ctx, &storage.SurrealDBConfig{
			EndpointURL: s.config.Storage.DSN,
			Namespace:   s.config.Storage.Namespace,
			Database:    s.config.Storage.Database,
			Username:    s.config.Storage.Username,
			Password:    s.config.Storage.Password,
		})
		if err != nil {
			return err
		}
		s.store = store
	default:
		return fmt.Errorf("unknown storage type: %s", s.config.Storage.Type)
	}

	if err := s.seedRecords(); err != nil {
		return err
	}

	s.logger.Info("storage initialized",
		zap.String("type", s.config.Storage.Type),
		zap.Int("seeded_records", len(s.config.Records)))
	return nil
}

// seedRecords loads the records declared in the configuration into the store
func (s *Server) seedRecords() error {
	for _, rc := range s.config.Records {
		data, err := hex.DecodeString(rc.Data)
		if err != nil {
			return fmt.Errorf("record %q: bad data: %w", rc.Name, err)
		}

		record := storage.Record{
			Name:  rc.Name,
			Type:  dnswire.Type(rc.Type),
			Class: dnswire.Class(rc.Class),
			TTL:   rc.TTL,
			Data:  data,
		}

		if err := s.store.PutRecord(s.ctx, record); err != nil {
			return fmt.Errorf("record %q: %w", rc.Name, err)
		}
	}

	return nil
}

// Start binds the UDP socket and runs the request loop until Close is called.
func (s *Server) Start() error {
	if err := s.listen(); err != nil {
		return err
	}

	s.serve()
	return nil
}

func (s *Server) listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("server already started")
	}
	if s.closed {
		return fmt.Errorf("server has been closed")
	}

	addr, err := net.ResolveUDPAddr("udp", s.config.Server.Address)
	if err != nil {
		return fmt.Errorf("failed to resolve address: %w", err)
	}

	s.conn, err = net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on UDP: %w", err)
	}

	s.started = true
	s.logger.Info("server listening",
		zap.String("address", s.conn.LocalAddr().String()),
		zap.String("upstream", s.relay.Upstream()))
	return nil
}

// serve reads and answers datagrams sequentially
func (s *Server) serve() {
	buf := make([]byte, requestBufferSize)

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		if s.config.Server.ReadTimeout > 0 {
			s.conn.SetReadDeadline(time.Now().Add(s.config.Server.ReadTimeout))
		}

		n, clientAddr, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			if s.ctx.Err() != nil {
				return
			}
			s.logger.Error("read error", zap.Error(err))
			continue
		}

		s.handle(buf[:n], clientAddr)
	}
}

// handle answers a single request. Malformed packets are dropped.
func (s *Server) handle(data []byte, clientAddr *net.UDPAddr) {
	request, err := dnswire.Unpack(data)
	if err != nil {
		s.logger.Warn("dropping malformed request",
			zap.String("client", clientAddr.String()),
			zap.Error(err))
		return
	}

	response := s.answerLocally(request)
	if response == nil {
		response = s.forward(data, request)
	}

	if s.config.Server.WriteTimeout > 0 {
		s.conn.SetWriteDeadline(time.Now().Add(s.config.Server.WriteTimeout))
	}

	if _, err := s.conn.WriteToUDP(response, clientAddr); err != nil {
		s.logger.Warn("failed to send response",
			zap.String("client", clientAddr.String()),
			zap.Error(err))
	}
}

// answerLocally builds a response from the override store. It returns nil
// unless every question in the request has at least one stored record.
func (s *Server) answerLocally(request *dnswire.Message) []byte {
	if s.store == nil || len(request.Questions) == 0 {
		return nil
	}

	var answers []dnswire.Record
	for _, q := range request.Questions {
		records, err := s.store.GetRecords(s.ctx, q.Name, q.Type)
		if err != nil {
			if !errors.Is(err, storage.ErrRecordNotFound) {
				s.logger.Error("storage lookup failed",
					zap.String("name", q.Name),
					zap.Error(err))
			}
			return nil
		}

		matched := false
		for _, r := range records {
			if r.Class != q.Class {
				continue
			}
			matched = true
			answers = append(answers, dnswire.Record{
				Name:  q.Name,
				Type:  r.Type,
				Class: r.Class,
				TTL:   r.TTL,
				Data:  r.Data,
			})
		}

		if !matched {
			return nil
		}
	}

	response := &dnswire.Message{
		Header: dnswire.Header{
			ID: request.Header.ID,
			Flags: dnswire.MakeFlags(
				true,
				request.Header.Flags.Opcode(),
				true,
				false,
				request.Header.Flags.RD(),
				false,
				0,
				dnswire.RCODE_NO_ERROR,
			),
			QDCount: uint16(len(request.Questions)),
			ANCount: uint16(len(answers)),
		},
		Questions: request.Questions,
		Answers:   answers,
	}

	s.logger.Debug("answered from local records",
		zap.Uint16("id", request.Header.ID),
		zap.Int("answers", len(answers)))
	return response.Pack()
}

// forward relays the raw query bytes upstream. The upstream response is
// returned to the client verbatim; a failed exchange yields SERVFAIL.
func (s *Server) forward(raw []byte, request *dnswire.Message) []byte {
	response, err := s.relay.Forward(s.ctx, raw)
	if err != nil {
		s.logger.Warn("upstream exchange failed",
			zap.Uint16("id", request.Header.ID),
			zap.Error(err))
		return dnswire.ServerFailure(request).Pack()
	}

	return response
}

// Addr returns the bound address, or nil before Start
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Close stops the request loop and releases the socket and store.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	s.cancel()

	var errs []error
	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
