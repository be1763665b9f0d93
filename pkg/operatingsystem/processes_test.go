/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package operatingsystem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NidhiHemanth/windows-snapshot/pkg/operatingsystem"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi/wmitest"
)

func TestProcesses_Refresh(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_Process": {
				{
					"Name":           "winlogon.exe",
					"ProcessId":      uint32(620),
					"ThreadCount":    uint32(4),
					"CreationDate":   "20260830070102.500000+000",
					"WorkingSetSize": "8323072",
				},
			},
			"Win32_Thread": {
				{"Handle": "1", "ProcessHandle": "620", "ThreadState": uint32(5)},
				{"Handle": "2", "ProcessHandle": "620", "ThreadState": uint32(3)},
			},
		},
	}

	procs := operatingsystem.NewProcesses()
	require.NoError(t, procs.Refresh(context.Background(), sess))

	records := procs.List.Records()
	require.Len(t, records, 1)
	p := records[0]
	require.NotNil(t, p.Name)
	assert.Equal(t, "winlogon.exe", *p.Name)
	require.NotNil(t, p.ProcessId)
	assert.Equal(t, uint32(620), *p.ProcessId)
	require.NotNil(t, p.WorkingSetSize)
	assert.Equal(t, uint64(8323072), *p.WorkingSetSize)
	require.NotNil(t, p.CreationDate)
	assert.Equal(t, 2026, p.CreationDate.Year())

	assert.Equal(t, 2, procs.Threads.Len())
}

func TestServices_Refresh(t *testing.T) {
	sess := &wmitest.Session{
		Rows: map[string][]wmi.Row{
			"Win32_Service": {
				{
					"Name":      "Winmgmt",
					"State":     "Running",
					"Started":   true,
					"StartMode": "Auto",
					"ProcessId": uint32(1180),
				},
				{
					"Name":    "Spooler",
					"State":   "Stopped",
					"Started": false,
				},
			},
		},
	}

	svcs := operatingsystem.NewServices()
	require.NoError(t, svcs.Refresh(context.Background(), sess))

	records := svcs.List.Records()
	require.Len(t, records, 2)
	require.NotNil(t, records[0].State)
	assert.Equal(t, "Running", *records[0].State)
	require.NotNil(t, records[1].Started)
	assert.False(t, *records[1].Started)
}

func TestSectionNames(t *testing.T) {
	assert.Equal(t, "networking", operatingsystem.NewNetworking().Name())
	assert.Equal(t, "processes", operatingsystem.NewProcesses().Name())
	assert.Equal(t, "services", operatingsystem.NewServices().Name())
}
