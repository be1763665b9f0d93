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

// Service mirrors the Win32_Service class: an installed service and
// its current run state.
type Service struct {
	AcceptPause             *bool      `json:"AcceptPause,omitempty" yaml:"AcceptPause,omitempty"`
	AcceptStop              *bool      `json:"AcceptStop,omitempty" yaml:"AcceptStop,omitempty"`
	Caption                 *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	CheckPoint              *uint32    `json:"CheckPoint,omitempty" yaml:"CheckPoint,omitempty"`
	CreationClassName       *string    `json:"CreationClassName,omitempty" yaml:"CreationClassName,omitempty"`
	DelayedAutoStart        *bool      `json:"DelayedAutoStart,omitempty" yaml:"DelayedAutoStart,omitempty"`
	Description             *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	DesktopInteract         *bool      `json:"DesktopInteract,omitempty" yaml:"DesktopInteract,omitempty"`
	DisplayName             *string    `json:"DisplayName,omitempty" yaml:"DisplayName,omitempty"`
	ErrorControl            *string    `json:"ErrorControl,omitempty" yaml:"ErrorControl,omitempty"`
	ExitCode                *uint32    `json:"ExitCode,omitempty" yaml:"ExitCode,omitempty"`
	InstallDate             *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	Name                    *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	PathName                *string    `json:"PathName,omitempty" yaml:"PathName,omitempty"`
	ProcessId               *uint32    `json:"ProcessId,omitempty" yaml:"ProcessId,omitempty"`
	ServiceSpecificExitCode *uint32    `json:"ServiceSpecificExitCode,omitempty" yaml:"ServiceSpecificExitCode,omitempty"`
	ServiceType             *string    `json:"ServiceType,omitempty" yaml:"ServiceType,omitempty"`
	Started                 *bool      `json:"Started,omitempty" yaml:"Started,omitempty"`
	StartMode               *string    `json:"StartMode,omitempty" yaml:"StartMode,omitempty"`
	StartName               *string    `json:"StartName,omitempty" yaml:"StartName,omitempty"`
	State                   *string    `json:"State,omitempty" yaml:"State,omitempty"`
	Status                  *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
	SystemCreationClassName *string    `json:"SystemCreationClassName,omitempty" yaml:"SystemCreationClassName,omitempty"`
	SystemName              *string    `json:"SystemName,omitempty" yaml:"SystemName,omitempty"`
	TagId                   *uint32    `json:"TagId,omitempty" yaml:"TagId,omitempty"`
	WaitHint                *uint32    `json:"WaitHint,omitempty" yaml:"WaitHint,omitempty"`
}

func (*Service) Class() string { return "Win32_Service" }

func (r *Service) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.Bool("AcceptPause", &r.AcceptPause),
		wmi.Bool("AcceptStop", &r.AcceptStop),
		wmi.Str("Caption", &r.Caption),
		wmi.U32("CheckPoint", &r.CheckPoint),
		wmi.Str("CreationClassName", &r.CreationClassName),
		wmi.Bool("DelayedAutoStart", &r.DelayedAutoStart),
		wmi.Str("Description", &r.Description),
		wmi.Bool("DesktopInteract", &r.DesktopInteract),
		wmi.Str("DisplayName", &r.DisplayName),
		wmi.Str("ErrorControl", &r.ErrorControl),
		wmi.U32("ExitCode", &r.ExitCode),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.Str("Name", &r.Name),
		wmi.Str("PathName", &r.PathName),
		wmi.U32("ProcessId", &r.ProcessId),
		wmi.U32("ServiceSpecificExitCode", &r.ServiceSpecificExitCode),
		wmi.Str("ServiceType", &r.ServiceType),
		wmi.Bool("Started", &r.Started),
		wmi.Str("StartMode", &r.StartMode),
		wmi.Str("StartName", &r.StartName),
		wmi.Str("State", &r.State),
		wmi.Str("Status", &r.Status),
		wmi.Str("SystemCreationClassName", &r.SystemCreationClassName),
		wmi.Str("SystemName", &r.SystemName),
		wmi.U32("TagId", &r.TagId),
		wmi.U32("WaitHint", &r.WaitHint),
	)
}

// ServiceList is the snapshot container for Win32_Service.
type ServiceList = wmi.Snapshot[Service, *Service]

func NewServiceList(opts ...wmi.QueryOption) *ServiceList {
	return wmi.NewSnapshot[Service](opts...)
}

// Services groups the service snapshot.
type Services struct {
	List *ServiceList `json:"services" yaml:"services"`
}

func NewServices(opts ...wmi.QueryOption) *Services {
	return &Services{List: NewServiceList(opts...)}
}

func (s *Services) Name() string { return "services" }

func (s *Services) Refreshers() []wmi.Refresher {
	return []wmi.Refresher{s.List}
}

func (s *Services) Refresh(ctx context.Context, sess wmi.Session) error {
	return wmi.RefreshAll(ctx, sess, s.Refreshers()...)
}
