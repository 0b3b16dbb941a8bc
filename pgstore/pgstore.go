// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pgstore persists UPER-encoded messages to PostgreSQL: each row is
// an opaque bytea payload keyed by an application-chosen id, alongside the
// table DDL emit/sql renders for the message's declared fields. This
// package does not read or write those declared columns itself — it is the
// thin transport between an emitted type's MarshalUPER/UnmarshalUPER pair
// and a bytea column, not an ORM.
package pgstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asn1c.dev/asn1c/uper"
)

// Marshaler is satisfied by every type asn1/emit/golang generates.
type Marshaler interface {
	MarshalUPER(w *uper.Writer) error
}

// Unmarshaler is satisfied by every type asn1/emit/golang generates.
type Unmarshaler interface {
	UnmarshalUPER(r *uper.Reader) error
}

// Logger is the diagnostic sink for InsertMessage/RetrieveMessage. The zero
// value of *slog.Logger is not usable; callers that don't care about these
// diagnostics should pass slog.New(slog.DiscardHandler) explicitly rather
// than leave it nil in production code, matching the rest of the module's
// ambient logging convention.
var Logger = slog.Default()

// InsertMessage encodes v per the Unaligned Packed Encoding Rules and
// upserts it into table as a bytea payload keyed by id. table is never
// interpolated from untrusted input by this package; callers own SQL
// identifier safety the same way they would for any other raw query.
func InsertMessage(ctx context.Context, pool *pgxpool.Pool, table string, id int64, v Marshaler) error {
	start := time.Now()
	w := uper.NewWriter()
	if err := v.MarshalUPER(w); err != nil {
		return fmt.Errorf("pgstore: encode message %d for %s: %w", id, table, err)
	}
	payload := w.Bytes()

	query := fmt.Sprintf(
		`INSERT INTO %s (id, payload) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload`, pgx.Identifier{table}.Sanitize())
	if _, err := pool.Exec(ctx, query, id, payload); err != nil {
		Logger.ErrorContext(ctx, "pgstore: insert failed", "table", table, "id", id, "error", err)
		return fmt.Errorf("pgstore: insert into %s: %w", table, err)
	}

	Logger.DebugContext(ctx, "pgstore: inserted message",
		"table", table, "id", id, "bytes", len(payload), "elapsed", time.Since(start))
	return nil
}

// RetrieveMessage loads the bytea payload stored under id in table and
// decodes it into v.
func RetrieveMessage(ctx context.Context, pool *pgxpool.Pool, table string, id int64, v Unmarshaler) error {
	start := time.Now()
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE id = $1`, pgx.Identifier{table}.Sanitize())

	var payload []byte
	if err := pool.QueryRow(ctx, query, id).Scan(&payload); err != nil {
		Logger.ErrorContext(ctx, "pgstore: retrieve failed", "table", table, "id", id, "error", err)
		return fmt.Errorf("pgstore: retrieve from %s: %w", table, err)
	}

	r := uper.NewReader(payload, len(payload)*8)
	if err := v.UnmarshalUPER(r); err != nil {
		return fmt.Errorf("pgstore: decode message %d from %s: %w", id, table, err)
	}

	Logger.DebugContext(ctx, "pgstore: retrieved message",
		"table", table, "id", id, "bytes", len(payload), "elapsed", time.Since(start))
	return nil
}
