// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/lmittmann/tint"
)

const termTimeFormat = "01-02|15:04:05.000"

type discardHandler struct{}

// DiscardHandler returns a no-op handler
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

func (h *discardHandler) Handle(_ context.Context, _ slog.Record) error { return nil }

func (h *discardHandler) Enabled(_ context.Context, _ slog.Level) bool { return false }

func (h *discardHandler) WithGroup(_ string) slog.Handler { return h }

func (h *discardHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

// NewTerminalHandlerWithLevel returns a handler formatted for human readability on a terminal,
// with colored levels when useColor is set, emitting records at or above lvl.
//
//	[LEVEL] [TIME] MESSAGE key=value key=value ...
func NewTerminalHandlerWithLevel(wr io.Writer, lvl *slog.LevelVar, useColor bool) slog.Handler {
	return tint.NewHandler(wr, &tint.Options{
		Level:       lvl,
		TimeFormat:  termTimeFormat,
		NoColor:     !useColor,
		ReplaceAttr: replaceTerminal,
	})
}

// JSONHandlerWithLevel returns a handler which prints records in JSON format at or above lvl.
func JSONHandlerWithLevel(wr io.Writer, lvl *slog.LevelVar) slog.Handler {
	return slog.NewJSONHandler(wr, &slog.HandlerOptions{
		ReplaceAttr: replaceJSON,
		Level:       lvl,
	})
}

// JSONHandler returns a JSON handler emitting every level.
func JSONHandler(wr io.Writer) slog.Handler {
	var lvl slog.LevelVar
	lvl.Set(LevelTrace)
	return JSONHandlerWithLevel(wr, &lvl)
}

func replaceTerminal(groups []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey && len(groups) == 0 {
		if l, ok := attr.Value.Any().(slog.Level); ok {
			switch l {
			case LevelTrace:
				return slog.String(slog.LevelKey, "TRCE")
			case LevelCrit:
				return slog.String(slog.LevelKey, "CRIT")
			}
		}
	}
	return replaceValue(attr)
}

func replaceJSON(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 {
		switch attr.Key {
		case slog.TimeKey:
			return slog.Attr{Key: "t", Value: attr.Value}
		case slog.LevelKey:
			if l, ok := attr.Value.Any().(slog.Level); ok {
				return slog.String("lvl", LevelString(l))
			}
		}
	}
	return replaceValue(attr)
}

// replaceValue renders big numbers as decimal strings instead of structs.
func replaceValue(attr slog.Attr) slog.Attr {
	switch v := attr.Value.Any().(type) {
	case *big.Int:
		if v == nil {
			return slog.String(attr.Key, "<nil>")
		}
		return slog.String(attr.Key, v.String())
	case *uint256.Int:
		if v == nil {
			return slog.String(attr.Key, "<nil>")
		}
		return slog.String(attr.Key, v.Dec())
	case fmt.Stringer:
		if attr.Value.Kind() == slog.KindAny {
			return slog.String(attr.Key, v.String())
		}
	}
	return attr
}
