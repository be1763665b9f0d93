/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package wmi_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi/wmitest"
)

func TestSnapshot_EmptyState(t *testing.T) {
	snap := wmi.NewSnapshot[routeRecord]()

	assert.Equal(t, "Win32_TestRoute", snap.Class())
	assert.Nil(t, snap.Records())
	assert.True(t, snap.LastUpdated().IsZero())
	assert.False(t, snap.Populated())
	assert.Zero(t, snap.Len())
}

func TestSnapshot_RefreshPopulates(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_TestRoute": {
				{"Name": "0.0.0.0", "Metric1": "5", "NextHop": nil},
				{"Name": "10.0.0.0", "Metric1": int64(10)},
			},
		},
	}

	snap := wmi.NewSnapshot[routeRecord]()
	before := time.Now()
	require.NoError(t, snap.Refresh(context.Background(), sess))

	records := snap.Records()
	require.Len(t, records, 2)
	require.NotNil(t, records[0].Metric1)
	assert.Equal(t, int32(5), *records[0].Metric1)
	assert.Nil(t, records[0].NextHop)

	assert.True(t, snap.Populated())
	assert.Equal(t, 2, snap.Len())

	last := snap.LastUpdated()
	assert.False(t, last.Before(before))
	assert.LessOrEqual(t, time.Since(last), time.Second)
}

func TestSnapshot_FailedRefreshLeavesStateUntouched(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_TestRoute": {{"Name": "0.0.0.0"}},
		},
	}

	snap := wmi.NewSnapshot[routeRecord]()
	require.NoError(t, snap.Refresh(context.Background(), sess))

	prevRecords := snap.Records()
	prevUpdated := snap.LastUpdated()

	// Second refresh fails: service rejects the class.
	sess.Errs = map[string]error{
		"Win32_TestRoute": fmt.Errorf("%w: gone", wmi.ErrServiceRejected),
	}

	err := snap.Refresh(context.Background(), sess)
	require.Error(t, err)

	var re *wmi.RefreshError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "Win32_TestRoute", re.Class)
	assert.True(t, errors.Is(err, wmi.ErrServiceRejected))

	// All-or-nothing: previous records and timestamp are exactly preserved.
	assert.Equal(t, prevRecords, snap.Records())
	assert.Equal(t, prevUpdated, snap.LastUpdated())
	assert.True(t, snap.Populated())
}

func TestSnapshot_FailedFirstRefreshStaysEmpty(t *testing.T) {
	sess := &wmitest.Session{
		Errs: map[string]error{
			"Win32_TestRoute": fmt.Errorf("%w: unknown class", wmi.ErrServiceRejected),
		},
	}

	snap := wmi.NewSnapshot[routeRecord]()
	require.Error(t, snap.Refresh(context.Background(), sess))

	assert.Nil(t, snap.Records())
	assert.True(t, snap.LastUpdated().IsZero())
	assert.False(t, snap.Populated())
}

func TestSnapshot_TypeMismatchAbortsRefresh(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_TestRoute": {{"Metric1": "n/a"}},
		},
	}

	snap := wmi.NewSnapshot[routeRecord]()
	err := snap.Refresh(context.Background(), sess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wmi.ErrTypeMismatch))
	assert.False(t, snap.Populated())
}

func TestSnapshot_ConcurrentReadersAndRefreshes(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_TestRoute": {{"Name": "0.0.0.0"}},
		},
	}

	snap := wmi.NewSnapshot[routeRecord]()
	require.NoError(t, snap.Refresh(context.Background(), sess))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = snap.Refresh(context.Background(), sess)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				records := snap.Records()
				last := snap.LastUpdated()
				// A populated timestamp never pairs with missing records.
				if len(records) == 0 {
					assert.True(t, last.IsZero())
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, snap.Len())
}

func TestSnapshot_MarshalJSON(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_TestRoute": {{"Name": "0.0.0.0", "Metric1": int32(1)}},
		},
	}

	snap := wmi.NewSnapshot[routeRecord]()
	require.NoError(t, snap.Refresh(context.Background(), sess))

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded struct {
		Class       string           `json:"class"`
		LastUpdated *time.Time       `json:"last_updated"`
		Records     []map[string]any `json:"records"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Win32_TestRoute", decoded.Class)
	require.NotNil(t, decoded.LastUpdated)
	require.Len(t, decoded.Records, 1)
}

func TestSnapshot_MarshalJSONEmpty(t *testing.T) {
	snap := wmi.NewSnapshot[routeRecord]()

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "last_updated")
	assert.Equal(t, []any{}, decoded["records"])
}

func TestRefreshAll_StopsOnFirstFailure(t *testing.T) {
	sess := &wmitest.Session{
		Errs: map[string]error{
			"Win32_TestRoute": fmt.Errorf("%w: nope", wmi.ErrServiceRejected),
		},
	}

	first := wmi.NewSnapshot[routeRecord]()
	second := wmi.NewSnapshot[routeRecord]()

	err := wmi.RefreshAll(context.Background(), sess, first, second)
	require.Error(t, err)
	// Only the first refresher ran.
	assert.Len(t, sess.Queries(), 1)
}
