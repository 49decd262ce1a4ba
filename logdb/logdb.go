// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/log"
)

const memPath = ":memory:"

var logger = log.WithContext("pkg", "logdb")

// LogDB indexes committed notifications by sequence number.
type LogDB struct {
	path          string
	db            *sql.DB
	driverVersion string
	stmtCache     *stmtCache
}

// New create or open log db at given path.
func New(path string) (logDB *LogDB, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if logDB == nil {
			db.Close()
		}
	}()
	if path == memPath {
		// every connection to :memory: opens a distinct database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(eventTableSchema); err != nil {
		return nil, errors.Wrap(err, "create schema")
	}

	driverVer, _, _ := sqlite3.Version()
	logger.Debug("log db opened", "path", path, "sqlite", driverVer)
	return &LogDB{
		path:          path,
		db:            db,
		driverVersion: driverVer,
		stmtCache:     newStmtCache(db),
	}, nil
}

// NewMem create a log db in ram.
func NewMem() (*LogDB, error) {
	return New(memPath)
}

// Close close the log db.
func (db *LogDB) Close() error {
	db.stmtCache.Clear()
	return db.db.Close()
}

func (db *LogDB) Path() string {
	return db.path
}

func (db *LogDB) DriverVersion() string {
	return db.driverVersion
}

// LastSeq returns the sequence number of the newest entry, 0 when empty.
func (db *LogDB) LastSeq() (uint64, error) {
	return lastSeq(db.db.QueryRow("SELECT COALESCE(MAX(seq), 0) FROM event"))
}

func lastSeq(row *sql.Row) (uint64, error) {
	var seq int64
	if err := row.Scan(&seq); err != nil {
		return 0, err
	}
	return uint64(seq), nil
}

func (db *LogDB) FilterEvents(ctx context.Context, filter *EventFilter) ([]*events.Entry, error) {
	const query = "SELECT seq, time, name, data FROM event"
	if filter == nil {
		return db.queryEvents(ctx, query+" ORDER BY seq ASC")
	}
	metricsHandleEventsFilter(filter)

	var args []any
	stmt := query + " WHERE 1"
	if filter.Range != nil {
		args = append(args, filter.Range.From)
		stmt += " AND seq >= ? "
		if filter.Range.To >= filter.Range.From {
			args = append(args, filter.Range.To)
			stmt += " AND seq <= ? "
		}
	}
	length := len(filter.CriteriaSet)
	for i, criteria := range filter.CriteriaSet {
		if i == 0 {
			stmt += " AND (( 1 "
		} else {
			stmt += " OR ( 1 "
		}
		if criteria.Name != "" {
			args = append(args, criteria.Name)
			stmt += " AND name = ? "
		}
		if criteria.Account != nil {
			args = append(args, criteria.Account.Bytes())
			stmt += " AND account = ? "
		}
		if criteria.Target != nil {
			args = append(args, criteria.Target[:])
			stmt += " AND target = ? "
		}
		if i == length-1 {
			stmt += " )) "
		} else {
			stmt += " ) "
		}
	}

	if filter.Order == DESC {
		stmt += " ORDER BY seq DESC "
	} else {
		stmt += " ORDER BY seq ASC "
	}

	if filter.Options != nil {
		limit := filter.Options.Limit
		if limit > math.MaxInt64 {
			limit = math.MaxInt64
		}
		stmt += " limit ?, ? "
		args = append(args, filter.Options.Offset, limit)
	}
	return db.queryEvents(ctx, stmt, args...)
}

func (db *LogDB) queryEvents(ctx context.Context, query string, args ...any) ([]*events.Entry, error) {
	stmt, err := db.stmtCache.Prepare(query)
	if err != nil {
		return nil, err
	}
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*events.Entry
	for rows.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		var (
			seq  int64
			time int64
			name string
			data string
		)
		if err := rows.Scan(&seq, &time, &name, &data); err != nil {
			return nil, err
		}
		ev, err := events.Decode(name, []byte(data))
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", seq)
		}
		entries = append(entries, &events.Entry{
			Seq:   uint64(seq),
			Time:  uint64(time),
			Event: ev,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// NewWriter creates a writer appending after the newest entry.
// At most one writer may hold uncommitted entries at a time.
func (db *LogDB) NewWriter() *Writer {
	return &Writer{db: db}
}

// Writer appends entries inside a single transaction.
type Writer struct {
	db    *LogDB
	tx    *sql.Tx
	next  uint64
	count int
}

func (w *Writer) begin() error {
	if w.tx != nil {
		return nil
	}
	tx, err := w.db.db.Begin()
	if err != nil {
		return err
	}
	last, err := lastSeq(tx.QueryRow("SELECT COALESCE(MAX(seq), 0) FROM event"))
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	w.tx = tx
	w.next = last + 1
	return nil
}

func (w *Writer) Write(time uint64, evs events.Events) ([]*events.Entry, error) {
	if len(evs) == 0 {
		return nil, nil
	}
	if err := w.begin(); err != nil {
		return nil, errors.Wrap(err, "begin")
	}
	// prepared on the tx connection, an in-memory db has no other
	txStmt, err := w.tx.Prepare("INSERT INTO event(seq, time, name, account, target, data) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}
	defer txStmt.Close()

	entries := make([]*events.Entry, 0, len(evs))
	for _, ev := range evs {
		data, err := json.Marshal(ev)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s", ev.Name())
		}
		var account, target []byte
		topics := ev.Topics()
		if topics.Account != nil {
			account = topics.Account.Bytes()
		}
		if topics.Target != nil {
			target = topics.Target[:]
		}
		if _, err := txStmt.Exec(w.next, time, ev.Name(), account, target, string(data)); err != nil {
			return nil, errors.Wrapf(err, "insert %s", ev.Name())
		}
		entries = append(entries, &events.Entry{Seq: w.next, Time: time, Event: ev})
		w.next++
		w.count++
	}
	return entries, nil
}

func (w *Writer) Commit() error {
	if w.tx == nil {
		return nil
	}
	defer w.reset()
	if err := w.tx.Commit(); err != nil {
		return err
	}
	metricWrittenCounter().Add(int64(w.count))
	return nil
}

func (w *Writer) Rollback() error {
	if w.tx == nil {
		return nil
	}
	defer w.reset()
	return w.tx.Rollback()
}

func (w *Writer) UncommittedCount() int {
	return w.count
}

func (w *Writer) reset() {
	w.tx = nil
	w.count = 0
}
