// Package web drives the counter view in a browser. The server keeps all
// rendering in Go: each websocket session runs an immediate-mode frame loop
// and sends the browser only the elements that changed.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/rprtr258/imflux/internal/config"
	"github.com/rprtr258/imflux/internal/counter"
	"github.com/rprtr258/imflux/internal/view"
)

const eventQueueSize = 100

// Server serves the page and its websocket sessions against one store.
type Server struct {
	cfg     config.ServerConfig
	store   *counter.Store
	binding *view.CounterBinding
	app     app
	logger  *zap.Logger
	mux     *http.ServeMux
}

// New creates a server for st.
func New(cfg config.ServerConfig, st *counter.Store, logger *zap.Logger) (*Server, error) {
	if cfg.FPS <= 0 || cfg.FPS > config.MaxFPS {
		return nil, fmt.Errorf("fps must be in 1..%d, got %d", config.MaxFPS, cfg.FPS)
	}
	header, err := view.HeaderByVariant(cfg.Header)
	if err != nil {
		return nil, err
	}
	headerHTML, err := header.RenderHTML()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:     cfg,
		store:   st,
		binding: view.ConnectCounter(st),
		app:     counterApp(headerHTML),
		logger:  logger.Named("web"),
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.Handle("/ws", websocket.Handler(s.serveSession))
	return s, nil
}

// Handler returns the HTTP handler serving the page and sessions.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run listens on the configured address until ctx is done, then shuts down.
// Open sessions end when ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener. It closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderPage(w, s.cfg.Title); err != nil {
		s.logger.Error("render page", zap.Error(err))
	}
}

func (s *Server) serveSession(c *websocket.Conn) {
	log := s.logger.With(zap.String("session", uuid.NewString()))
	log.Debug("session opened")

	var elems syncMap[ID, elemState]
	queue := make(chan event, eventQueueSize)

	// dirty holds at most one pending "state changed" signal.
	dirty := make(chan struct{}, 1)
	dirty <- struct{}{}
	unsubscribe := s.store.Subscribe(func(counter.State) {
		select {
		case dirty <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		for {
			var e event
			if err := websocket.JSON.Receive(c, &e); err != nil {
				return fmt.Errorf("read event: %w", err)
			}
			log.Debug("received event", zap.String("id", string(e.ID)), zap.String("event", e.Event))
			select {
			case queue <- e:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		return s.frames(ctx, c, &elems, queue, dirty, log)
	})
	g.Go(func() error {
		// Unblocks the reader once either side is done.
		<-ctx.Done()
		return c.Close()
	})

	if err := g.Wait(); err != nil && !isClosed(err) {
		log.Warn("session ended", zap.Error(err))
		return
	}
	log.Debug("session closed")
}

// frames renders at the configured rate until ctx is done or a write fails.
func (s *Server) frames(
	ctx context.Context,
	c *websocket.Conn,
	elems *syncMap[ID, elemState],
	queue <-chan event,
	dirty <-chan struct{},
	log *zap.Logger,
) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.FPS))
	defer ticker.Stop()

	var pending []event
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		changed := false
		select {
		case <-dirty:
			changed = true
		default:
		}

		pending = drainEvents(queue, pending)
		now, later := takeEvents(pending)
		for _, e := range now {
			if s.applyEvent(elems, e) {
				changed = true
			} else {
				log.Debug("ignored event", zap.String("id", string(e.ID)), zap.String("event", e.Event))
			}
		}
		pending = later

		if !changed {
			continue
		}

		f := frame{elems: elems}
		s.app(&f, s.binding.Props())
		for _, cmd := range f.commands {
			if err := websocket.JSON.Send(c, cmd); err != nil {
				return fmt.Errorf("write %s %s: %w", cmd.Kind, cmd.ID, err)
			}
		}
	}
}

// drainEvents moves queued events into pending without letting pending grow
// past eventQueueSize. Events left in the queue hold back the reader.
func drainEvents(queue <-chan event, pending []event) []event {
	for len(pending) < eventQueueSize {
		select {
		case e := <-queue:
			pending = append(pending, e)
		default:
			return pending
		}
	}
	return pending
}

// takeEvents splits pending into the events applied this frame, at most one
// per element, and the ones rolled over to the next frame so each click is
// rendered.
func takeEvents(pending []event) (now, later []event) {
	seen := map[ID]struct{}{}
	for _, e := range pending {
		if _, ok := seen[e.ID]; ok {
			later = append(later, e)
			continue
		}
		seen[e.ID] = struct{}{}
		now = append(now, e)
	}
	return now, later
}

func (s *Server) applyEvent(elems *syncMap[ID, elemState], e event) bool {
	if e.Event != "clicked" {
		return false
	}
	st, ok := elems.Get(e.ID)
	if !ok || !st.button {
		return false
	}
	st.clicked = true
	elems.Set(e.ID, st)
	return true
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, net.ErrClosed) ||
		strings.Contains(err.Error(), "broken pipe")
}
