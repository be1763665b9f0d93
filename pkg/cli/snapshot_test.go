/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSnapshotter struct {
	measures int
	limit    int
	cancel   context.CancelFunc
	err      error
}

func (c *countingSnapshotter) Measure(ctx context.Context) error {
	c.measures++
	if c.err != nil {
		return c.err
	}
	if c.measures >= c.limit {
		c.cancel()
	}
	return nil
}

func TestWatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cs := &countingSnapshotter{limit: 2, cancel: cancel}
	require.NoError(t, watch(ctx, cs, time.Millisecond))
	assert.Equal(t, 2, cs.measures)
}

func TestWatchReturnsMeasureError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boom := errors.New("service rejected")
	cs := &countingSnapshotter{limit: 10, cancel: cancel, err: boom}
	err := watch(ctx, cs, time.Millisecond)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, cs.measures)
}
