// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package excise

import (
	"context"
	"log/slog"
	"math"
	"strings"
)

// Unbounded is the default removal limit. It is large enough that every
// occurrence of a literal pattern character will be removed.
const Unbounded = int64(math.MaxInt64)

// Resolver applies a pattern to a byte buffer in two sequential phases:
//
//  1. Class expansion. Every class token present in the pattern removes all
//     matching bytes from the buffer, regardless of the limit. The bracket
//     groups are then stripped from the pattern.
//  2. Literal removal. Each distinct character remaining in the pattern, in
//     the order it first appears, removes up to limit occurrences of itself
//     from the buffer, scanning left to right.
//
// Both phases preserve the relative order of surviving bytes. The resolver
// owns the buffer passed to Apply for the duration of the call and hands the
// result back to the caller.
type Resolver struct {
	pattern string
	limit   int64

	// logging
	ctx    context.Context
	logger *slog.Logger
}

// NewResolver returns a resolver for the given pattern. The limit bounds how
// many occurrences of each distinct literal pattern character are removed;
// it does not apply to class tokens. A negative limit is a configuration
// error and is rejected here, before any buffer is touched.
func NewResolver(ctx context.Context, pattern string, limit int64, logger *slog.Logger) (*Resolver, error) {
	if limit < 0 {
		return nil, &ErrBadLimit{Limit: limit}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		pattern: pattern,
		limit:   limit,
		ctx:     ctx,
		logger:  logger,
	}, nil
}

// Apply runs both phases against buf and returns the surviving bytes.
// Apply consumes the resolver's pattern; it is not restartable.
func (r *Resolver) Apply(buf []byte) []byte {
	buf = r.expandClasses(buf)
	return r.removeLiterals(buf)
}

// expandClasses removes every byte matched by a class token present in the
// pattern, checking the tokens in table order, then strips the bracket
// groups from the pattern.
func (r *Resolver) expandClasses(buf []byte) []byte {
	for _, tok := range classTokens {
		if !strings.Contains(r.pattern, tok.name) {
			continue
		}
		before := len(buf)
		buf = deleteFunc(buf, tok.pred)
		r.logger.LogAttrs(r.ctx, slog.LevelDebug, "expanded class token",
			slog.String("token", tok.name),
			slog.Int("deleted", before-len(buf)))
	}
	r.pattern = stripClassGroups(r.pattern)
	return buf
}

// removeLiterals removes up to limit occurrences of each distinct literal
// pattern character. A single left-to-right pass with per-character
// remaining counters gives the same result as deleting the first match
// repeatedly: for each byte value, the first limit occurrences go.
func (r *Resolver) removeLiterals(buf []byte) []byte {
	if len(r.pattern) == 0 || r.limit == 0 {
		return buf
	}
	// The limit is per distinct character, not a shared budget. A repeated
	// pattern character does not earn a second allotment.
	remaining := make(map[byte]int64, len(r.pattern))
	for i := 0; i < len(r.pattern); i++ {
		if _, ok := remaining[r.pattern[i]]; !ok {
			remaining[r.pattern[i]] = r.limit
		}
	}
	before := len(buf)
	out := buf[:0]
	for _, c := range buf {
		if n, ok := remaining[c]; ok && n > 0 {
			remaining[c] = n - 1
			continue
		}
		out = append(out, c)
	}
	r.logger.LogAttrs(r.ctx, slog.LevelDebug, "removed literals",
		slog.String("pattern", r.pattern),
		slog.Int("deleted", before-len(out)))
	return out
}

// deleteFunc removes every byte satisfying pred, filtering in place and
// preserving the relative order of survivors.
func deleteFunc(buf []byte, pred func(byte) bool) []byte {
	out := buf[:0]
	for _, c := range buf {
		if !pred(c) {
			out = append(out, c)
		}
	}
	return out
}
