/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package operatingsystem_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NidhiHemanth/windows-snapshot/pkg/operatingsystem"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi/wmitest"
)

func TestIP4RouteTables_Refresh(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_IP4RouteTable": {
				{
					"Destination": "0.0.0.0",
					"Mask":        "0.0.0.0",
					"NextHop":     "192.168.1.1",
					"Metric1":     "5",
					"InstallDate": "20230415103000.000000+060",
				},
				{
					"Destination": "127.0.0.0",
					"Mask":        "255.0.0.0",
					"NextHop":     nil,
					"Metric1":     int32(331),
				},
			},
		},
	}

	snap := operatingsystem.NewIP4RouteTables()
	require.NoError(t, snap.Refresh(context.Background(), sess))

	records := snap.Records()
	require.Len(t, records, 2)

	first := records[0]
	require.NotNil(t, first.Destination)
	assert.Equal(t, "0.0.0.0", *first.Destination)
	require.NotNil(t, first.NextHop)
	assert.Equal(t, "192.168.1.1", *first.NextHop)
	require.NotNil(t, first.Metric1)
	assert.Equal(t, int32(5), *first.Metric1)
	require.NotNil(t, first.InstallDate)
	assert.Equal(t, 2023, first.InstallDate.Year())

	second := records[1]
	assert.Nil(t, second.NextHop)
	require.NotNil(t, second.Metric1)
	assert.Equal(t, int32(331), *second.Metric1)

	assert.WithinDuration(t, time.Now(), snap.LastUpdated(), time.Second)
}

func TestIP4RouteTables_RejectedClassKeepsState(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_IP4RouteTable": {
				{"Destination": "10.0.0.0", "Metric1": int32(25)},
			},
		},
	}

	snap := operatingsystem.NewIP4RouteTables()
	require.NoError(t, snap.Refresh(context.Background(), sess))
	require.Equal(t, 1, snap.Len())
	updated := snap.LastUpdated()

	sess.Errs = map[string]error{
		"Win32_IP4RouteTable": wmi.ErrServiceRejected,
	}

	err := snap.Refresh(context.Background(), sess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wmi.ErrServiceRejected))

	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, updated, snap.LastUpdated())
}

func TestNetworking_RefreshAllSnapshots(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_IP4RouteTable": {
				{"Destination": "0.0.0.0"},
			},
			"Win32_NetworkProtocol": {
				{"Name": "MSAFD Tcpip [TCP/IP]", "GuaranteesDelivery": true},
			},
		},
	}

	net := operatingsystem.NewNetworking()
	require.NoError(t, net.Refresh(context.Background(), sess))

	assert.Equal(t, 1, net.IP4RouteTables.Len())
	assert.Equal(t, 1, net.NetworkProtocols.Len())

	// Classes with no scripted rows still refresh to an empty result.
	assert.True(t, net.NTDomains.Populated())
	assert.Equal(t, 0, net.NTDomains.Len())

	queries := sess.Queries()
	assert.Len(t, queries, len(net.Refreshers()))
	assert.Contains(t, queries, "SELECT * FROM Win32_IP4RouteTable")
}

func TestNetworking_RefreshStopsOnFirstFailure(t *testing.T) {
	sess := &wmitest.Session{
		Errs: map[string]error{
			"Win32_IP4PersistedRouteTable": wmi.ErrServiceRejected,
		},
		Rows: map[string][]wmi.Row{
			"Win32_IP4RouteTable": {
				{"Destination": "0.0.0.0"},
			},
		},
	}

	net := operatingsystem.NewNetworking()
	err := net.Refresh(context.Background(), sess)
	require.Error(t, err)

	var re *wmi.RefreshError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "Win32_IP4PersistedRouteTable", re.Class)

	// The container before the failing one refreshed, the rest did not.
	assert.True(t, net.IP4RouteTables.Populated())
	assert.False(t, net.NetworkClients.Populated())
}

func TestNTDomain_DecodesRoles(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_NTDomain": {
				{
					"DomainName": "CORP",
					"DSWritableFlag": true,
					"Roles":      []any{"LanmanNT", "PrimaryDomainController"},
				},
			},
		},
	}

	snap := operatingsystem.NewNTDomains()
	require.NoError(t, snap.Refresh(context.Background(), sess))

	records := snap.Records()
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Roles)
	assert.Equal(t, []string{"LanmanNT", "PrimaryDomainController"}, *records[0].Roles)
	require.NotNil(t, records[0].DSWritableFlag)
	assert.True(t, *records[0].DSWritableFlag)
}

func TestPingStatus_DecodeRow(t *testing.T) {
	var r operatingsystem.PingStatus
	err := r.DecodeRow(wmi.Row{
		"Address":      "8.8.8.8",
		"ResponseTime": uint32(12),
		"StatusCode":   uint32(0),
		"RouteRecord":  []any{"10.0.0.1", "72.14.204.1"},
	})
	require.NoError(t, err)

	require.NotNil(t, r.Address)
	assert.Equal(t, "8.8.8.8", *r.Address)
	require.NotNil(t, r.ResponseTime)
	assert.Equal(t, uint32(12), *r.ResponseTime)
	require.NotNil(t, r.RouteRecord)
	assert.Len(t, *r.RouteRecord, 2)
}
