/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package operatingsystem

import (
	"context"
	"time"

	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
)

// Process mirrors the Win32_Process class: one running process with
// its resource counters.
type Process struct {
	Caption                    *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	CommandLine                *string    `json:"CommandLine,omitempty" yaml:"CommandLine,omitempty"`
	CreationClassName          *string    `json:"CreationClassName,omitempty" yaml:"CreationClassName,omitempty"`
	CreationDate               *time.Time `json:"CreationDate,omitempty" yaml:"CreationDate,omitempty"`
	CSCreationClassName        *string    `json:"CSCreationClassName,omitempty" yaml:"CSCreationClassName,omitempty"`
	CSName                     *string    `json:"CSName,omitempty" yaml:"CSName,omitempty"`
	Description                *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	ExecutablePath             *string    `json:"ExecutablePath,omitempty" yaml:"ExecutablePath,omitempty"`
	ExecutionState             *uint16    `json:"ExecutionState,omitempty" yaml:"ExecutionState,omitempty"`
	Handle                     *string    `json:"Handle,omitempty" yaml:"Handle,omitempty"`
	HandleCount                *uint32    `json:"HandleCount,omitempty" yaml:"HandleCount,omitempty"`
	InstallDate                *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	KernelModeTime             *uint64    `json:"KernelModeTime,omitempty" yaml:"KernelModeTime,omitempty"`
	MaximumWorkingSetSize      *uint32    `json:"MaximumWorkingSetSize,omitempty" yaml:"MaximumWorkingSetSize,omitempty"`
	MinimumWorkingSetSize      *uint32    `json:"MinimumWorkingSetSize,omitempty" yaml:"MinimumWorkingSetSize,omitempty"`
	Name                       *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	OSCreationClassName        *string    `json:"OSCreationClassName,omitempty" yaml:"OSCreationClassName,omitempty"`
	OSName                     *string    `json:"OSName,omitempty" yaml:"OSName,omitempty"`
	OtherOperationCount        *uint64    `json:"OtherOperationCount,omitempty" yaml:"OtherOperationCount,omitempty"`
	OtherTransferCount         *uint64    `json:"OtherTransferCount,omitempty" yaml:"OtherTransferCount,omitempty"`
	PageFaults                 *uint32    `json:"PageFaults,omitempty" yaml:"PageFaults,omitempty"`
	PageFileUsage              *uint32    `json:"PageFileUsage,omitempty" yaml:"PageFileUsage,omitempty"`
	ParentProcessId            *uint32    `json:"ParentProcessId,omitempty" yaml:"ParentProcessId,omitempty"`
	PeakPageFileUsage          *uint32    `json:"PeakPageFileUsage,omitempty" yaml:"PeakPageFileUsage,omitempty"`
	PeakVirtualSize            *uint64    `json:"PeakVirtualSize,omitempty" yaml:"PeakVirtualSize,omitempty"`
	PeakWorkingSetSize         *uint32    `json:"PeakWorkingSetSize,omitempty" yaml:"PeakWorkingSetSize,omitempty"`
	Priority                   *uint32    `json:"Priority,omitempty" yaml:"Priority,omitempty"`
	PrivatePageCount           *uint64    `json:"PrivatePageCount,omitempty" yaml:"PrivatePageCount,omitempty"`
	ProcessId                  *uint32    `json:"ProcessId,omitempty" yaml:"ProcessId,omitempty"`
	QuotaNonPagedPoolUsage     *uint32    `json:"QuotaNonPagedPoolUsage,omitempty" yaml:"QuotaNonPagedPoolUsage,omitempty"`
	QuotaPagedPoolUsage        *uint32    `json:"QuotaPagedPoolUsage,omitempty" yaml:"QuotaPagedPoolUsage,omitempty"`
	QuotaPeakNonPagedPoolUsage *uint32    `json:"QuotaPeakNonPagedPoolUsage,omitempty" yaml:"QuotaPeakNonPagedPoolUsage,omitempty"`
	QuotaPeakPagedPoolUsage    *uint32    `json:"QuotaPeakPagedPoolUsage,omitempty" yaml:"QuotaPeakPagedPoolUsage,omitempty"`
	ReadOperationCount         *uint64    `json:"ReadOperationCount,omitempty" yaml:"ReadOperationCount,omitempty"`
	ReadTransferCount          *uint64    `json:"ReadTransferCount,omitempty" yaml:"ReadTransferCount,omitempty"`
	SessionId                  *uint32    `json:"SessionId,omitempty" yaml:"SessionId,omitempty"`
	Status                     *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
	TerminationDate            *time.Time `json:"TerminationDate,omitempty" yaml:"TerminationDate,omitempty"`
	ThreadCount                *uint32    `json:"ThreadCount,omitempty" yaml:"ThreadCount,omitempty"`
	UserModeTime               *uint64    `json:"UserModeTime,omitempty" yaml:"UserModeTime,omitempty"`
	VirtualSize                *uint64    `json:"VirtualSize,omitempty" yaml:"VirtualSize,omitempty"`
	WindowsVersion             *string    `json:"WindowsVersion,omitempty" yaml:"WindowsVersion,omitempty"`
	WorkingSetSize             *uint64    `json:"WorkingSetSize,omitempty" yaml:"WorkingSetSize,omitempty"`
	WriteOperationCount        *uint64    `json:"WriteOperationCount,omitempty" yaml:"WriteOperationCount,omitempty"`
	WriteTransferCount         *uint64    `json:"WriteTransferCount,omitempty" yaml:"WriteTransferCount,omitempty"`
}

func (*Process) Class() string { return "Win32_Process" }

func (r *Process) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.Str("Caption", &r.Caption),
		wmi.Str("CommandLine", &r.CommandLine),
		wmi.Str("CreationClassName", &r.CreationClassName),
		wmi.Time("CreationDate", &r.CreationDate),
		wmi.Str("CSCreationClassName", &r.CSCreationClassName),
		wmi.Str("CSName", &r.CSName),
		wmi.Str("Description", &r.Description),
		wmi.Str("ExecutablePath", &r.ExecutablePath),
		wmi.U16("ExecutionState", &r.ExecutionState),
		wmi.Str("Handle", &r.Handle),
		wmi.U32("HandleCount", &r.HandleCount),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.U64("KernelModeTime", &r.KernelModeTime),
		wmi.U32("MaximumWorkingSetSize", &r.MaximumWorkingSetSize),
		wmi.U32("MinimumWorkingSetSize", &r.MinimumWorkingSetSize),
		wmi.Str("Name", &r.Name),
		wmi.Str("OSCreationClassName", &r.OSCreationClassName),
		wmi.Str("OSName", &r.OSName),
		wmi.U64("OtherOperationCount", &r.OtherOperationCount),
		wmi.U64("OtherTransferCount", &r.OtherTransferCount),
		wmi.U32("PageFaults", &r.PageFaults),
		wmi.U32("PageFileUsage", &r.PageFileUsage),
		wmi.U32("ParentProcessId", &r.ParentProcessId),
		wmi.U32("PeakPageFileUsage", &r.PeakPageFileUsage),
		wmi.U64("PeakVirtualSize", &r.PeakVirtualSize),
		wmi.U32("PeakWorkingSetSize", &r.PeakWorkingSetSize),
		wmi.U32("Priority", &r.Priority),
		wmi.U64("PrivatePageCount", &r.PrivatePageCount),
		wmi.U32("ProcessId", &r.ProcessId),
		wmi.U32("QuotaNonPagedPoolUsage", &r.QuotaNonPagedPoolUsage),
		wmi.U32("QuotaPagedPoolUsage", &r.QuotaPagedPoolUsage),
		wmi.U32("QuotaPeakNonPagedPoolUsage", &r.QuotaPeakNonPagedPoolUsage),
		wmi.U32("QuotaPeakPagedPoolUsage", &r.QuotaPeakPagedPoolUsage),
		wmi.U64("ReadOperationCount", &r.ReadOperationCount),
		wmi.U64("ReadTransferCount", &r.ReadTransferCount),
		wmi.U32("SessionId", &r.SessionId),
		wmi.Str("Status", &r.Status),
		wmi.Time("TerminationDate", &r.TerminationDate),
		wmi.U32("ThreadCount", &r.ThreadCount),
		wmi.U64("UserModeTime", &r.UserModeTime),
		wmi.U64("VirtualSize", &r.VirtualSize),
		wmi.Str("WindowsVersion", &r.WindowsVersion),
		wmi.U64("WorkingSetSize", &r.WorkingSetSize),
		wmi.U64("WriteOperationCount", &r.WriteOperationCount),
		wmi.U64("WriteTransferCount", &r.WriteTransferCount),
	)
}

// Thread mirrors the Win32_Thread class.
type Thread struct {
	Caption             *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	CreationClassName   *string    `json:"CreationClassName,omitempty" yaml:"CreationClassName,omitempty"`
	CSCreationClassName *string    `json:"CSCreationClassName,omitempty" yaml:"CSCreationClassName,omitempty"`
	CSName              *string    `json:"CSName,omitempty" yaml:"CSName,omitempty"`
	Description         *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	ElapsedTime         *uint64    `json:"ElapsedTime,omitempty" yaml:"ElapsedTime,omitempty"`
	ExecutionState      *uint16    `json:"ExecutionState,omitempty" yaml:"ExecutionState,omitempty"`
	Handle              *string    `json:"Handle,omitempty" yaml:"Handle,omitempty"`
	InstallDate         *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	KernelModeTime      *uint64    `json:"KernelModeTime,omitempty" yaml:"KernelModeTime,omitempty"`
	Name                *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	OSCreationClassName *string    `json:"OSCreationClassName,omitempty" yaml:"OSCreationClassName,omitempty"`
	OSName              *string    `json:"OSName,omitempty" yaml:"OSName,omitempty"`
	Priority            *uint32    `json:"Priority,omitempty" yaml:"Priority,omitempty"`
	PriorityBase        *uint32    `json:"PriorityBase,omitempty" yaml:"PriorityBase,omitempty"`
	ProcessHandle       *string    `json:"ProcessHandle,omitempty" yaml:"ProcessHandle,omitempty"`
	StartAddress        *uint32    `json:"StartAddress,omitempty" yaml:"StartAddress,omitempty"`
	Status              *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
	ThreadState         *uint32    `json:"ThreadState,omitempty" yaml:"ThreadState,omitempty"`
	ThreadWaitReason    *uint32    `json:"ThreadWaitReason,omitempty" yaml:"ThreadWaitReason,omitempty"`
	UserModeTime        *uint64    `json:"UserModeTime,omitempty" yaml:"UserModeTime,omitempty"`
}

func (*Thread) Class() string { return "Win32_Thread" }

func (r *Thread) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.Str("Caption", &r.Caption),
		wmi.Str("CreationClassName", &r.CreationClassName),
		wmi.Str("CSCreationClassName", &r.CSCreationClassName),
		wmi.Str("CSName", &r.CSName),
		wmi.Str("Description", &r.Description),
		wmi.U64("ElapsedTime", &r.ElapsedTime),
		wmi.U16("ExecutionState", &r.ExecutionState),
		wmi.Str("Handle", &r.Handle),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.U64("KernelModeTime", &r.KernelModeTime),
		wmi.Str("Name", &r.Name),
		wmi.Str("OSCreationClassName", &r.OSCreationClassName),
		wmi.Str("OSName", &r.OSName),
		wmi.U32("Priority", &r.Priority),
		wmi.U32("PriorityBase", &r.PriorityBase),
		wmi.Str("ProcessHandle", &r.ProcessHandle),
		wmi.U32("StartAddress", &r.StartAddress),
		wmi.Str("Status", &r.Status),
		wmi.U32("ThreadState", &r.ThreadState),
		wmi.U32("ThreadWaitReason", &r.ThreadWaitReason),
		wmi.U64("UserModeTime", &r.UserModeTime),
	)
}

// Snapshot containers for the process classes.
type (
	ProcessList = wmi.Snapshot[Process, *Process]
	ThreadList  = wmi.Snapshot[Thread, *Thread]
)

func NewProcessList(opts ...wmi.QueryOption) *ProcessList {
	return wmi.NewSnapshot[Process](opts...)
}

func NewThreadList(opts ...wmi.QueryOption) *ThreadList {
	return wmi.NewSnapshot[Thread](opts...)
}

// Processes groups the process and thread snapshots.
type Processes struct {
	List    *ProcessList `json:"processes" yaml:"processes"`
	Threads *ThreadList  `json:"threads" yaml:"threads"`
}

func NewProcesses(opts ...wmi.QueryOption) *Processes {
	return &Processes{
		List:    NewProcessList(opts...),
		Threads: NewThreadList(opts...),
	}
}

func (p *Processes) Name() string { return "processes" }

func (p *Processes) Refreshers() []wmi.Refresher {
	return []wmi.Refresher{p.List, p.Threads}
}

func (p *Processes) Refresh(ctx context.Context, sess wmi.Session) error {
	return wmi.RefreshAll(ctx, sess, p.Refreshers()...)
}
