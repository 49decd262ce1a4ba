// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package subscriptions

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/api/utils"
	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/log"
	"github.com/Ministry-of-Decentralization/token-curation/logdb"
)

var logger = log.WithContext("pkg", "subscriptions")

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 7) / 10

	backlogPageSize = 100
	feedBufferSize  = 256
)

// Source provides committed entries, live and past.
type Source interface {
	SubscribeEvents(ch chan []*events.Entry) event.Subscription
	LogDB() *logdb.LogDB
}

type Subscriptions struct {
	source         Source
	db             logdb.Reader
	backtraceLimit uint64
	upgrader       *websocket.Upgrader
	done           chan struct{}
	closeOnce      sync.Once
	wg             sync.WaitGroup
}

func New(source Source, allowedOrigins []string, backtraceLimit uint64) *Subscriptions {
	return &Subscriptions{
		source:         source,
		db:             source.LogDB(),
		backtraceLimit: backtraceLimit,
		upgrader: &websocket.Upgrader{
			EnableCompression: true,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == "*" || allowed == strings.ToLower(origin) {
						return true
					}
				}
				return false
			},
		},
		done: make(chan struct{}),
	}
}

// criteria selects streamed entries, empty fields match anything.
type criteria logdb.EventCriteria

func parseCriteria(values url.Values) (*criteria, error) {
	var c criteria
	if name := values.Get("name"); name != "" {
		if !events.IsKnown(name) {
			return nil, utils.BadRequest(errors.Errorf("name: unknown event %q", name))
		}
		c.Name = name
	}
	if s := values.Get("account"); s != "" {
		addr, err := utils.ParseAddress(s, "account")
		if err != nil {
			return nil, err
		}
		c.Account = &addr
	}
	if s := values.Get("target"); s != "" {
		id, err := utils.ParseTargetID(s)
		if err != nil {
			return nil, err
		}
		c.Target = &id
	}
	return &c, nil
}

func (c *criteria) match(e *events.Entry) bool {
	if c.Name != "" && e.Event.Name() != c.Name {
		return false
	}
	topics := e.Event.Topics()
	if c.Account != nil && (topics.Account == nil || *topics.Account != *c.Account) {
		return false
	}
	if c.Target != nil && (topics.Target == nil || *topics.Target != *c.Target) {
		return false
	}
	return true
}

// parsePos returns the sequence number streaming resumes after. An empty pos
// starts at the newest entry.
func (s *Subscriptions) parsePos(value string) (uint64, error) {
	last, err := s.db.LastSeq()
	if err != nil {
		return 0, err
	}
	if value == "" {
		return last, nil
	}
	pos, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, utils.BadRequest(errors.WithMessage(err, "pos"))
	}
	if pos > last {
		return 0, utils.BadRequest(errors.Errorf("pos: ahead of the newest entry %d", last))
	}
	if last-pos > s.backtraceLimit {
		return 0, utils.Forbidden(errors.Errorf("pos: older than the allowed backtrace of %d entries", s.backtraceLimit))
	}
	return pos, nil
}

func (s *Subscriptions) handleSubscribeEvents(w http.ResponseWriter, req *http.Request) error {
	c, err := parseCriteria(req.URL.Query())
	if err != nil {
		return err
	}

	// subscribe before reading the backlog so no commit falls in between
	ch := make(chan []*events.Entry, feedBufferSize)
	sub := s.source.SubscribeEvents(ch)
	defer sub.Unsubscribe()

	pos, err := s.parsePos(req.URL.Query().Get("pos"))
	if err != nil {
		return err
	}

	conn, err := s.upgrader.Upgrade(w, req, nil)
	// since the conn is hijacked here, no error should be returned in lines below
	if err != nil {
		logger.Debug("upgrade to websocket", "err", err)
		return nil
	}
	defer conn.Close()

	s.wg.Add(1)
	defer s.wg.Done()

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := s.pipe(req.Context(), conn, sub, ch, pos, c); err != nil {
		logger.Debug("subscription terminated", "err", err)
		closeMsg = websocket.FormatCloseMessage(websocket.CloseInternalServerErr, err.Error())
	}
	if err := conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeWait)); err != nil {
		logger.Debug("write close message", "err", err)
	}
	return nil
}

func (s *Subscriptions) pipe(
	ctx context.Context,
	conn *websocket.Conn,
	sub event.Subscription,
	ch chan []*events.Entry,
	pos uint64,
	c *criteria,
) error {
	closed := make(chan struct{})
	// the read loop handles pongs and the close of the peer
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				logger.Debug("websocket read", "err", err)
				return
			}
		}
	}()
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	send := func(entries []*events.Entry) error {
		for _, e := range entries {
			// the backlog and the feed may overlap
			if e.Seq <= pos {
				continue
			}
			pos = e.Seq
			if !c.match(e) {
				continue
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return err
			}
			if err := conn.WriteJSON(e); err != nil {
				return err
			}
		}
		return nil
	}

	for {
		page, err := s.db.FilterEvents(ctx, &logdb.EventFilter{
			Range:   &logdb.Range{From: pos + 1, To: math.MaxInt64},
			Options: &logdb.Options{Limit: backlogPageSize},
		})
		if err != nil {
			return err
		}
		if err := send(page); err != nil {
			return err
		}
		if len(page) < backlogPageSize {
			break
		}
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case batch := <-ch:
			if err := send(batch); err != nil {
				return err
			}
		case err := <-sub.Err():
			// nil once the feed is closed on shutdown
			return err
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		case <-closed:
			return nil
		case <-s.done:
			return nil
		}
	}
}

// Close terminates open subscriptions and waits for their handlers to return.
func (s *Subscriptions) Close() {
	s.closeOnce.Do(func() { close(s.done) })
	s.wg.Wait()
}

func (s *Subscriptions) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/events").
		Methods(http.MethodGet).
		Name("WS /subscriptions/events").
		HandlerFunc(utils.WrapHandlerFunc(s.handleSubscribeEvents))
}
