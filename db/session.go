/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/flamego/session"
	"github.com/jackc/pgx/v5"
)

const (
	defaultSessionLifetime = 7 * 24 * time.Hour
	defaultSessionTable    = "flamego_sessions"
)

// SessionStoreConfig contains options for the PostgreSQL session store.
type SessionStoreConfig struct {
	// Lifetime is how long an idle session is kept. Default is 7 days.
	Lifetime time.Duration
	// TableName defaults to "flamego_sessions".
	TableName string
	// Encoder defaults to session.GobEncoder.
	Encoder session.Encoder
	// Decoder defaults to session.GobDecoder.
	Decoder session.Decoder
}

// SessionStore implements session.Store on the shared pool. It keeps the
// visitor's draft report, flash messages and chat widget state across
// restarts.
type SessionStore struct {
	lifetime time.Duration
	table    string
	encoder  session.Encoder
	decoder  session.Decoder
}

// SessionIniter returns the Initer for the PostgreSQL session store. It
// accepts an optional SessionStoreConfig.
func SessionIniter() session.Initer {
	return func(_ context.Context, args ...interface{}) (session.Store, error) {
		var config SessionStoreConfig
		if len(args) > 0 {
			var ok bool
			config, ok = args[0].(SessionStoreConfig)
			if !ok {
				return nil, errInvalidSessionConfig
			}
		}

		return newSessionStore(config), nil
	}
}

func newSessionStore(config SessionStoreConfig) *SessionStore {
	s := &SessionStore{
		lifetime: config.Lifetime,
		table:    pgx.Identifier{config.TableName}.Sanitize(),
		encoder:  config.Encoder,
		decoder:  config.Decoder,
	}

	if s.lifetime <= 0 {
		s.lifetime = defaultSessionLifetime
	}
	if config.TableName == "" {
		s.table = pgx.Identifier{defaultSessionTable}.Sanitize()
	}
	if s.encoder == nil {
		s.encoder = session.GobEncoder
	}
	if s.decoder == nil {
		s.decoder = session.GobDecoder
	}

	return s
}

// The session middleware writes the cookie itself.
func noopIDWriter(http.ResponseWriter, *http.Request, string) {}

// Exist reports whether an unexpired session with the ID exists.
func (s *SessionStore) Exist(ctx context.Context, sid string) bool {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM `+s.table+` WHERE id = $1 AND expires_at > NOW())`,
		sid,
	).Scan(&exists)
	return err == nil && exists
}

// Read loads the session, or starts an empty one under the same ID when it
// is missing, expired or undecodable.
func (s *SessionStore) Read(ctx context.Context, sid string) (session.Session, error) {
	var data []byte
	err := pool.QueryRow(ctx,
		`SELECT data FROM `+s.table+` WHERE id = $1 AND expires_at > NOW()`,
		sid,
	).Scan(&data)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return session.NewBaseSession(sid, s.encoder, noopIDWriter), nil
	case err != nil:
		return nil, err
	}

	values, err := s.decoder(data)
	if err != nil {
		logger.Warn("Discarding undecodable session", "error", err)
		return session.NewBaseSession(sid, s.encoder, noopIDWriter), nil
	}

	return session.NewBaseSessionWithData(sid, s.encoder, noopIDWriter, values), nil
}

// Destroy deletes the session.
func (s *SessionStore) Destroy(ctx context.Context, sid string) error {
	_, err := pool.Exec(ctx, `DELETE FROM `+s.table+` WHERE id = $1`, sid)
	return err
}

// Touch extends the expiry of the session.
func (s *SessionStore) Touch(ctx context.Context, sid string) error {
	_, err := pool.Exec(ctx,
		`UPDATE `+s.table+` SET expires_at = $1 WHERE id = $2`,
		time.Now().Add(s.lifetime),
		sid,
	)
	return err
}

// Save upserts the session data.
func (s *SessionStore) Save(ctx context.Context, sess session.Session) error {
	data, err := sess.Encode()
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO `+s.table+` (id, data, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			data = EXCLUDED.data,
			expires_at = EXCLUDED.expires_at`,
		sess.ID(),
		data,
		time.Now().Add(s.lifetime),
	)

	return err
}

// GC removes expired sessions.
func (s *SessionStore) GC(ctx context.Context) error {
	tag, err := pool.Exec(ctx, `DELETE FROM `+s.table+` WHERE expires_at < NOW()`)
	if err != nil {
		return err
	}

	if n := tag.RowsAffected(); n > 0 {
		logger.Debug("Removed expired sessions", "count", n)
	}

	return nil
}
