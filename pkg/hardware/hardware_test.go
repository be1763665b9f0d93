/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package hardware_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NidhiHemanth/windows-snapshot/pkg/hardware"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi/wmitest"
)

func TestNetworkingDevices_Refresh(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_NetworkAdapter": {
				{
					"Name":                        "Intel(R) Ethernet Connection",
					"MACAddress":                  "00:1A:2B:3C:4D:5E",
					"NetEnabled":                  true,
					"Speed":                       "1000000000",
					"PowerManagementCapabilities": []any{uint16(1), uint16(3)},
				},
			},
			"Win32_NetworkAdapterConfiguration": {
				{
					"Description":      "Intel(R) Ethernet Connection",
					"DHCPEnabled":      true,
					"IPAddress":        []any{"192.168.1.15", "fe80::1"},
					"DefaultIPGateway": []any{"192.168.1.1"},
					"MTU":              uint32(1500),
					"DefaultTTL":       uint8(128),
				},
			},
		},
	}

	devs := hardware.NewNetworkingDevices()
	require.NoError(t, devs.Refresh(context.Background(), sess))

	adapters := devs.Adapters.Records()
	require.Len(t, adapters, 1)
	a := adapters[0]
	require.NotNil(t, a.MACAddress)
	assert.Equal(t, "00:1A:2B:3C:4D:5E", *a.MACAddress)
	require.NotNil(t, a.Speed)
	assert.Equal(t, uint64(1000000000), *a.Speed)
	require.NotNil(t, a.PowerManagementCapabilities)
	assert.Equal(t, []uint16{1, 3}, *a.PowerManagementCapabilities)

	configs := devs.Configurations.Records()
	require.Len(t, configs, 1)
	c := configs[0]
	require.NotNil(t, c.IPAddress)
	assert.Equal(t, []string{"192.168.1.15", "fe80::1"}, *c.IPAddress)
	require.NotNil(t, c.DefaultTTL)
	assert.Equal(t, uint8(128), *c.DefaultTTL)
}

func TestNetworkingDevices_AdapterFailureSkipsConfigurations(t *testing.T) {
	sess := &wmitest.Session{
		Errs: map[string]error{
			"Win32_NetworkAdapter": wmi.ErrServiceRejected,
		},
	}

	devs := hardware.NewNetworkingDevices()
	err := devs.Refresh(context.Background(), sess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wmi.ErrServiceRejected))

	assert.False(t, devs.Adapters.Populated())
	assert.False(t, devs.Configurations.Populated())
	assert.Len(t, sess.Queries(), 1)
}

func TestProcessors_Refresh(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_Processor": {
				{
					"Name":                      "Intel(R) Core(TM) i7-9700K",
					"NumberOfCores":             uint32(8),
					"NumberOfLogicalProcessors": uint32(8),
					"MaxClockSpeed":             uint32(3600),
					"LoadPercentage":            uint16(12),
				},
			},
		},
	}

	procs := hardware.NewProcessors()
	require.NoError(t, procs.Refresh(context.Background(), sess))

	records := procs.List.Records()
	require.Len(t, records, 1)
	p := records[0]
	require.NotNil(t, p.NumberOfCores)
	assert.Equal(t, uint32(8), *p.NumberOfCores)
	require.NotNil(t, p.LoadPercentage)
	assert.Equal(t, uint16(12), *p.LoadPercentage)
}

func TestSectionNames(t *testing.T) {
	assert.Equal(t, "networking_devices", hardware.NewNetworkingDevices().Name())
	assert.Equal(t, "processors", hardware.NewProcessors().Name())
}
