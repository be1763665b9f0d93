/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package hardware

import (
	"context"
	"time"

	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
)

// Processor mirrors the Win32_Processor class.
type Processor struct {
	AddressWidth              *uint16    `json:"AddressWidth,omitempty" yaml:"AddressWidth,omitempty"`
	Architecture              *uint16    `json:"Architecture,omitempty" yaml:"Architecture,omitempty"`
	Availability              *uint16    `json:"Availability,omitempty" yaml:"Availability,omitempty"`
	Caption                   *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	CpuStatus                 *uint16    `json:"CpuStatus,omitempty" yaml:"CpuStatus,omitempty"`
	CurrentClockSpeed         *uint32    `json:"CurrentClockSpeed,omitempty" yaml:"CurrentClockSpeed,omitempty"`
	CurrentVoltage            *uint16    `json:"CurrentVoltage,omitempty" yaml:"CurrentVoltage,omitempty"`
	DataWidth                 *uint16    `json:"DataWidth,omitempty" yaml:"DataWidth,omitempty"`
	Description               *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	DeviceID                  *string    `json:"DeviceID,omitempty" yaml:"DeviceID,omitempty"`
	ExtClock                  *uint32    `json:"ExtClock,omitempty" yaml:"ExtClock,omitempty"`
	Family                    *uint16    `json:"Family,omitempty" yaml:"Family,omitempty"`
	InstallDate               *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	L2CacheSize               *uint32    `json:"L2CacheSize,omitempty" yaml:"L2CacheSize,omitempty"`
	L2CacheSpeed              *uint32    `json:"L2CacheSpeed,omitempty" yaml:"L2CacheSpeed,omitempty"`
	L3CacheSize               *uint32    `json:"L3CacheSize,omitempty" yaml:"L3CacheSize,omitempty"`
	L3CacheSpeed              *uint32    `json:"L3CacheSpeed,omitempty" yaml:"L3CacheSpeed,omitempty"`
	LoadPercentage            *uint16    `json:"LoadPercentage,omitempty" yaml:"LoadPercentage,omitempty"`
	Manufacturer              *string    `json:"Manufacturer,omitempty" yaml:"Manufacturer,omitempty"`
	MaxClockSpeed             *uint32    `json:"MaxClockSpeed,omitempty" yaml:"MaxClockSpeed,omitempty"`
	Name                      *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	NumberOfCores             *uint32    `json:"NumberOfCores,omitempty" yaml:"NumberOfCores,omitempty"`
	NumberOfEnabledCore       *uint32    `json:"NumberOfEnabledCore,omitempty" yaml:"NumberOfEnabledCore,omitempty"`
	NumberOfLogicalProcessors *uint32    `json:"NumberOfLogicalProcessors,omitempty" yaml:"NumberOfLogicalProcessors,omitempty"`
	PartNumber                *string    `json:"PartNumber,omitempty" yaml:"PartNumber,omitempty"`
	ProcessorId               *string    `json:"ProcessorId,omitempty" yaml:"ProcessorId,omitempty"`
	ProcessorType             *uint16    `json:"ProcessorType,omitempty" yaml:"ProcessorType,omitempty"`
	SecondLevelAddressTranslationExtensions *bool `json:"SecondLevelAddressTranslationExtensions,omitempty" yaml:"SecondLevelAddressTranslationExtensions,omitempty"`
	SerialNumber              *string    `json:"SerialNumber,omitempty" yaml:"SerialNumber,omitempty"`
	SocketDesignation         *string    `json:"SocketDesignation,omitempty" yaml:"SocketDesignation,omitempty"`
	Status                    *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
	StatusInfo                *uint16    `json:"StatusInfo,omitempty" yaml:"StatusInfo,omitempty"`
	Stepping                  *string    `json:"Stepping,omitempty" yaml:"Stepping,omitempty"`
	ThreadCount               *uint32    `json:"ThreadCount,omitempty" yaml:"ThreadCount,omitempty"`
	VirtualizationFirmwareEnabled *bool  `json:"VirtualizationFirmwareEnabled,omitempty" yaml:"VirtualizationFirmwareEnabled,omitempty"`
	VMMonitorModeExtensions   *bool      `json:"VMMonitorModeExtensions,omitempty" yaml:"VMMonitorModeExtensions,omitempty"`
}

func (*Processor) Class() string { return "Win32_Processor" }

func (r *Processor) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.U16("AddressWidth", &r.AddressWidth),
		wmi.U16("Architecture", &r.Architecture),
		wmi.U16("Availability", &r.Availability),
		wmi.Str("Caption", &r.Caption),
		wmi.U16("CpuStatus", &r.CpuStatus),
		wmi.U32("CurrentClockSpeed", &r.CurrentClockSpeed),
		wmi.U16("CurrentVoltage", &r.CurrentVoltage),
		wmi.U16("DataWidth", &r.DataWidth),
		wmi.Str("Description", &r.Description),
		wmi.Str("DeviceID", &r.DeviceID),
		wmi.U32("ExtClock", &r.ExtClock),
		wmi.U16("Family", &r.Family),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.U32("L2CacheSize", &r.L2CacheSize),
		wmi.U32("L2CacheSpeed", &r.L2CacheSpeed),
		wmi.U32("L3CacheSize", &r.L3CacheSize),
		wmi.U32("L3CacheSpeed", &r.L3CacheSpeed),
		wmi.U16("LoadPercentage", &r.LoadPercentage),
		wmi.Str("Manufacturer", &r.Manufacturer),
		wmi.U32("MaxClockSpeed", &r.MaxClockSpeed),
		wmi.Str("Name", &r.Name),
		wmi.U32("NumberOfCores", &r.NumberOfCores),
		wmi.U32("NumberOfEnabledCore", &r.NumberOfEnabledCore),
		wmi.U32("NumberOfLogicalProcessors", &r.NumberOfLogicalProcessors),
		wmi.Str("PartNumber", &r.PartNumber),
		wmi.Str("ProcessorId", &r.ProcessorId),
		wmi.U16("ProcessorType", &r.ProcessorType),
		wmi.Bool("SecondLevelAddressTranslationExtensions", &r.SecondLevelAddressTranslationExtensions),
		wmi.Str("SerialNumber", &r.SerialNumber),
		wmi.Str("SocketDesignation", &r.SocketDesignation),
		wmi.Str("Status", &r.Status),
		wmi.U16("StatusInfo", &r.StatusInfo),
		wmi.Str("Stepping", &r.Stepping),
		wmi.U32("ThreadCount", &r.ThreadCount),
		wmi.Bool("VirtualizationFirmwareEnabled", &r.VirtualizationFirmwareEnabled),
		wmi.Bool("VMMonitorModeExtensions", &r.VMMonitorModeExtensions),
	)
}

// ProcessorList is the snapshot container for Win32_Processor.
type ProcessorList = wmi.Snapshot[Processor, *Processor]

func NewProcessorList(opts ...wmi.QueryOption) *ProcessorList {
	return wmi.NewSnapshot[Processor](opts...)
}

// Processors groups the processor snapshot.
type Processors struct {
	List *ProcessorList `json:"processors" yaml:"processors"`
}

func NewProcessors(opts ...wmi.QueryOption) *Processors {
	return &Processors{List: NewProcessorList(opts...)}
}

func (p *Processors) Name() string { return "processors" }

func (p *Processors) Refreshers() []wmi.Refresher {
	return []wmi.Refresher{p.List}
}

func (p *Processors) Refresh(ctx context.Context, sess wmi.Session) error {
	return wmi.RefreshAll(ctx, sess, p.Refreshers()...)
}
