/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package wmi

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Record is implemented by every typed mirror of a WMI class.
type Record interface {
	// Class returns the WMI class name the record mirrors.
	Class() string
}

// Decodable is the pointer-side contract Query uses to populate
// records: *R must know its class name and how to decode one row into
// itself.
type Decodable[R any] interface {
	*R
	Record
	DecodeRow(row Row) error
}

// QueryOption configures query execution.
type QueryOption func(*queryConfig)

type queryConfig struct {
	skipInvalid bool
}

// WithSkipInvalid changes the type-mismatch policy from abort-whole-query
// to skip-and-log: a record whose attributes cannot be coerced is
// dropped with a warning instead of failing the query. The default
// aborts so that callers never receive a silently partial result.
func WithSkipInvalid() QueryOption {
	return func(c *queryConfig) {
		c.skipInvalid = true
	}
}

// Query executes "SELECT * FROM <class>" for the record type R against
// the session and decodes every returned row. Attributes missing from
// a row resolve to nil fields; attributes the record does not declare
// are ignored. The call blocks until the service responds; cancel via
// the session's context handling, not here.
func Query[R any, P Decodable[R]](ctx context.Context, sess Session, opts ...QueryOption) ([]R, error) {
	var cfg queryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero R
	class := P(&zero).Class()

	start := time.Now()
	rows, err := sess.Query(ctx, "SELECT * FROM "+class)
	if err != nil {
		queryTotal.WithLabelValues(class, "error").Inc()
		return nil, &QueryError{Class: class, Err: err}
	}

	records := make([]R, 0, len(rows))
	for _, row := range rows {
		var rec R
		if decodeErr := P(&rec).DecodeRow(row); decodeErr != nil {
			decodeErr = withClass(decodeErr, class)
			if cfg.skipInvalid && errors.Is(decodeErr, ErrTypeMismatch) {
				slog.Warn("skipping undecodable record",
					slog.String("class", class),
					slog.String("error", decodeErr.Error()))
				recordsSkipped.WithLabelValues(class).Inc()
				continue
			}
			queryTotal.WithLabelValues(class, "error").Inc()
			return nil, decodeErr
		}
		records = append(records, rec)
	}

	queryTotal.WithLabelValues(class, "success").Inc()
	queryDuration.WithLabelValues(class).Observe(time.Since(start).Seconds())
	return records, nil
}

// withClass stamps the class name onto decode errors, which are built
// by field binders that only know the attribute name.
func withClass(err error, class string) error {
	var qe *QueryError
	if errors.As(err, &qe) {
		if qe.Class == "" {
			qe.Class = class
		}
		return qe
	}
	return &QueryError{Class: class, Err: err}
}
