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

// IP4RouteTable mirrors the Win32_IP4RouteTable class: one entry of
// the IPv4 routing table, including destination, mask, next hop, and
// the route metrics.
type IP4RouteTable struct {
	Age            *int32     `json:"Age,omitempty" yaml:"Age,omitempty"`
	Caption        *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	Description    *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	Destination    *string    `json:"Destination,omitempty" yaml:"Destination,omitempty"`
	Information    *string    `json:"Information,omitempty" yaml:"Information,omitempty"`
	InstallDate    *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	InterfaceIndex *int32     `json:"InterfaceIndex,omitempty" yaml:"InterfaceIndex,omitempty"`
	Mask           *string    `json:"Mask,omitempty" yaml:"Mask,omitempty"`
	Metric1        *int32     `json:"Metric1,omitempty" yaml:"Metric1,omitempty"`
	Metric2        *int32     `json:"Metric2,omitempty" yaml:"Metric2,omitempty"`
	Metric3        *int32     `json:"Metric3,omitempty" yaml:"Metric3,omitempty"`
	Metric4        *int32     `json:"Metric4,omitempty" yaml:"Metric4,omitempty"`
	Metric5        *int32     `json:"Metric5,omitempty" yaml:"Metric5,omitempty"`
	Name           *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	NextHop        *string    `json:"NextHop,omitempty" yaml:"NextHop,omitempty"`
	Protocol       *uint32    `json:"Protocol,omitempty" yaml:"Protocol,omitempty"`
	Status         *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
	Type           *uint32    `json:"Type,omitempty" yaml:"Type,omitempty"`
}

func (*IP4RouteTable) Class() string { return "Win32_IP4RouteTable" }

func (r *IP4RouteTable) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.I32("Age", &r.Age),
		wmi.Str("Caption", &r.Caption),
		wmi.Str("Description", &r.Description),
		wmi.Str("Destination", &r.Destination),
		wmi.Str("Information", &r.Information),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.I32("InterfaceIndex", &r.InterfaceIndex),
		wmi.Str("Mask", &r.Mask),
		wmi.I32("Metric1", &r.Metric1),
		wmi.I32("Metric2", &r.Metric2),
		wmi.I32("Metric3", &r.Metric3),
		wmi.I32("Metric4", &r.Metric4),
		wmi.I32("Metric5", &r.Metric5),
		wmi.Str("Name", &r.Name),
		wmi.Str("NextHop", &r.NextHop),
		wmi.U32("Protocol", &r.Protocol),
		wmi.Str("Status", &r.Status),
		wmi.U32("Type", &r.Type),
	)
}

// IP4PersistedRouteTable mirrors the Win32_IP4PersistedRouteTable
// class: a route that persists across reboots.
type IP4PersistedRouteTable struct {
	Caption     *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	Description *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	Destination *string    `json:"Destination,omitempty" yaml:"Destination,omitempty"`
	InstallDate *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	Mask        *string    `json:"Mask,omitempty" yaml:"Mask,omitempty"`
	Metric1     *int32     `json:"Metric1,omitempty" yaml:"Metric1,omitempty"`
	Name        *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	NextHop     *string    `json:"NextHop,omitempty" yaml:"NextHop,omitempty"`
	Status      *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
}

func (*IP4PersistedRouteTable) Class() string { return "Win32_IP4PersistedRouteTable" }

func (r *IP4PersistedRouteTable) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.Str("Caption", &r.Caption),
		wmi.Str("Description", &r.Description),
		wmi.Str("Destination", &r.Destination),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.Str("Mask", &r.Mask),
		wmi.I32("Metric1", &r.Metric1),
		wmi.Str("Name", &r.Name),
		wmi.Str("NextHop", &r.NextHop),
		wmi.Str("Status", &r.Status),
	)
}

// NetworkClient mirrors the Win32_NetworkClient class.
type NetworkClient struct {
	Caption      *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	Description  *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	InstallDate  *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	Manufacturer *string    `json:"Manufacturer,omitempty" yaml:"Manufacturer,omitempty"`
	Name         *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	Status       *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
}

func (*NetworkClient) Class() string { return "Win32_NetworkClient" }

func (r *NetworkClient) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.Str("Caption", &r.Caption),
		wmi.Str("Description", &r.Description),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.Str("Manufacturer", &r.Manufacturer),
		wmi.Str("Name", &r.Name),
		wmi.Str("Status", &r.Status),
	)
}

// NetworkConnection mirrors the Win32_NetworkConnection class: an
// active connection to a network resource.
type NetworkConnection struct {
	AccessMask      *uint32    `json:"AccessMask,omitempty" yaml:"AccessMask,omitempty"`
	Caption         *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	Comment         *string    `json:"Comment,omitempty" yaml:"Comment,omitempty"`
	ConnectionState *string    `json:"ConnectionState,omitempty" yaml:"ConnectionState,omitempty"`
	ConnectionType  *string    `json:"ConnectionType,omitempty" yaml:"ConnectionType,omitempty"`
	Description     *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	DisplayType     *string    `json:"DisplayType,omitempty" yaml:"DisplayType,omitempty"`
	InstallDate     *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	LocalName       *string    `json:"LocalName,omitempty" yaml:"LocalName,omitempty"`
	Name            *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	Persistent      *bool      `json:"Persistent,omitempty" yaml:"Persistent,omitempty"`
	ProviderName    *string    `json:"ProviderName,omitempty" yaml:"ProviderName,omitempty"`
	RemoteName      *string    `json:"RemoteName,omitempty" yaml:"RemoteName,omitempty"`
	RemotePath      *string    `json:"RemotePath,omitempty" yaml:"RemotePath,omitempty"`
	ResourceType    *string    `json:"ResourceType,omitempty" yaml:"ResourceType,omitempty"`
	Status          *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
	UserName        *string    `json:"UserName,omitempty" yaml:"UserName,omitempty"`
}

func (*NetworkConnection) Class() string { return "Win32_NetworkConnection" }

func (r *NetworkConnection) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.U32("AccessMask", &r.AccessMask),
		wmi.Str("Caption", &r.Caption),
		wmi.Str("Comment", &r.Comment),
		wmi.Str("ConnectionState", &r.ConnectionState),
		wmi.Str("ConnectionType", &r.ConnectionType),
		wmi.Str("Description", &r.Description),
		wmi.Str("DisplayType", &r.DisplayType),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.Str("LocalName", &r.LocalName),
		wmi.Str("Name", &r.Name),
		wmi.Bool("Persistent", &r.Persistent),
		wmi.Str("ProviderName", &r.ProviderName),
		wmi.Str("RemoteName", &r.RemoteName),
		wmi.Str("RemotePath", &r.RemotePath),
		wmi.Str("ResourceType", &r.ResourceType),
		wmi.Str("Status", &r.Status),
		wmi.Str("UserName", &r.UserName),
	)
}

// NetworkProtocol mirrors the Win32_NetworkProtocol class.
type NetworkProtocol struct {
	Caption                     *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	ConnectionlessService       *bool      `json:"ConnectionlessService,omitempty" yaml:"ConnectionlessService,omitempty"`
	Description                 *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	GuaranteesDelivery          *bool      `json:"GuaranteesDelivery,omitempty" yaml:"GuaranteesDelivery,omitempty"`
	GuaranteesSequencing        *bool      `json:"GuaranteesSequencing,omitempty" yaml:"GuaranteesSequencing,omitempty"`
	InstallDate                 *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	MaximumAddressSize          *uint32    `json:"MaximumAddressSize,omitempty" yaml:"MaximumAddressSize,omitempty"`
	MaximumMessageSize          *uint32    `json:"MaximumMessageSize,omitempty" yaml:"MaximumMessageSize,omitempty"`
	MessageOriented             *bool      `json:"MessageOriented,omitempty" yaml:"MessageOriented,omitempty"`
	MinimumAddressSize          *uint32    `json:"MinimumAddressSize,omitempty" yaml:"MinimumAddressSize,omitempty"`
	Name                        *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	PseudoStreamOriented        *bool      `json:"PseudoStreamOriented,omitempty" yaml:"PseudoStreamOriented,omitempty"`
	Status                      *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
	SupportsBroadcasting        *bool      `json:"SupportsBroadcasting,omitempty" yaml:"SupportsBroadcasting,omitempty"`
	SupportsConnectData         *bool      `json:"SupportsConnectData,omitempty" yaml:"SupportsConnectData,omitempty"`
	SupportsDisconnectData      *bool      `json:"SupportsDisconnectData,omitempty" yaml:"SupportsDisconnectData,omitempty"`
	SupportsEncryption          *bool      `json:"SupportsEncryption,omitempty" yaml:"SupportsEncryption,omitempty"`
	SupportsExpeditedData       *bool      `json:"SupportsExpeditedData,omitempty" yaml:"SupportsExpeditedData,omitempty"`
	SupportsFragmentation       *bool      `json:"SupportsFragmentation,omitempty" yaml:"SupportsFragmentation,omitempty"`
	SupportsGracefulClosing     *bool      `json:"SupportsGracefulClosing,omitempty" yaml:"SupportsGracefulClosing,omitempty"`
	SupportsGuaranteedBandwidth *bool      `json:"SupportsGuaranteedBandwidth,omitempty" yaml:"SupportsGuaranteedBandwidth,omitempty"`
	SupportsMulticasting        *bool      `json:"SupportsMulticasting,omitempty" yaml:"SupportsMulticasting,omitempty"`
	SupportsQualityofService    *bool      `json:"SupportsQualityofService,omitempty" yaml:"SupportsQualityofService,omitempty"`
}

func (*NetworkProtocol) Class() string { return "Win32_NetworkProtocol" }

func (r *NetworkProtocol) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.Str("Caption", &r.Caption),
		wmi.Bool("ConnectionlessService", &r.ConnectionlessService),
		wmi.Str("Description", &r.Description),
		wmi.Bool("GuaranteesDelivery", &r.GuaranteesDelivery),
		wmi.Bool("GuaranteesSequencing", &r.GuaranteesSequencing),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.U32("MaximumAddressSize", &r.MaximumAddressSize),
		wmi.U32("MaximumMessageSize", &r.MaximumMessageSize),
		wmi.Bool("MessageOriented", &r.MessageOriented),
		wmi.U32("MinimumAddressSize", &r.MinimumAddressSize),
		wmi.Str("Name", &r.Name),
		wmi.Bool("PseudoStreamOriented", &r.PseudoStreamOriented),
		wmi.Str("Status", &r.Status),
		wmi.Bool("SupportsBroadcasting", &r.SupportsBroadcasting),
		wmi.Bool("SupportsConnectData", &r.SupportsConnectData),
		wmi.Bool("SupportsDisconnectData", &r.SupportsDisconnectData),
		wmi.Bool("SupportsEncryption", &r.SupportsEncryption),
		wmi.Bool("SupportsExpeditedData", &r.SupportsExpeditedData),
		wmi.Bool("SupportsFragmentation", &r.SupportsFragmentation),
		wmi.Bool("SupportsGracefulClosing", &r.SupportsGracefulClosing),
		wmi.Bool("SupportsGuaranteedBandwidth", &r.SupportsGuaranteedBandwidth),
		wmi.Bool("SupportsMulticasting", &r.SupportsMulticasting),
		wmi.Bool("SupportsQualityofService", &r.SupportsQualityofService),
	)
}

// NTDomain mirrors the Win32_NTDomain class.
type NTDomain struct {
	Caption                      *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	ClientSiteName               *string    `json:"ClientSiteName,omitempty" yaml:"ClientSiteName,omitempty"`
	CreationClassName            *string    `json:"CreationClassName,omitempty" yaml:"CreationClassName,omitempty"`
	DcSiteName                   *string    `json:"DcSiteName,omitempty" yaml:"DcSiteName,omitempty"`
	Description                  *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	DnsForestName                *string    `json:"DnsForestName,omitempty" yaml:"DnsForestName,omitempty"`
	DomainControllerAddress      *string    `json:"DomainControllerAddress,omitempty" yaml:"DomainControllerAddress,omitempty"`
	DomainControllerAddressType  *int32     `json:"DomainControllerAddressType,omitempty" yaml:"DomainControllerAddressType,omitempty"`
	DomainControllerName         *string    `json:"DomainControllerName,omitempty" yaml:"DomainControllerName,omitempty"`
	DomainGuid                   *string    `json:"DomainGuid,omitempty" yaml:"DomainGuid,omitempty"`
	DomainName                   *string    `json:"DomainName,omitempty" yaml:"DomainName,omitempty"`
	DSDirectoryServiceFlag       *bool      `json:"DSDirectoryServiceFlag,omitempty" yaml:"DSDirectoryServiceFlag,omitempty"`
	DSDnsControllerFlag          *bool      `json:"DSDnsControllerFlag,omitempty" yaml:"DSDnsControllerFlag,omitempty"`
	DSDnsDomainFlag              *bool      `json:"DSDnsDomainFlag,omitempty" yaml:"DSDnsDomainFlag,omitempty"`
	DSDnsForestFlag              *bool      `json:"DSDnsForestFlag,omitempty" yaml:"DSDnsForestFlag,omitempty"`
	DSGlobalCatalogFlag          *bool      `json:"DSGlobalCatalogFlag,omitempty" yaml:"DSGlobalCatalogFlag,omitempty"`
	DSKerberosDistributionCenterFlag *bool  `json:"DSKerberosDistributionCenterFlag,omitempty" yaml:"DSKerberosDistributionCenterFlag,omitempty"`
	DSPrimaryDomainControllerFlag *bool     `json:"DSPrimaryDomainControllerFlag,omitempty" yaml:"DSPrimaryDomainControllerFlag,omitempty"`
	DSTimeServiceFlag            *bool      `json:"DSTimeServiceFlag,omitempty" yaml:"DSTimeServiceFlag,omitempty"`
	DSWritableFlag               *bool      `json:"DSWritableFlag,omitempty" yaml:"DSWritableFlag,omitempty"`
	InstallDate                  *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	Name                         *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	NameFormat                   *string    `json:"NameFormat,omitempty" yaml:"NameFormat,omitempty"`
	PrimaryOwnerContact          *string    `json:"PrimaryOwnerContact,omitempty" yaml:"PrimaryOwnerContact,omitempty"`
	PrimaryOwnerName             *string    `json:"PrimaryOwnerName,omitempty" yaml:"PrimaryOwnerName,omitempty"`
	Roles                        *[]string  `json:"Roles,omitempty" yaml:"Roles,omitempty"`
	Status                       *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
}

func (*NTDomain) Class() string { return "Win32_NTDomain" }

func (r *NTDomain) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.Str("Caption", &r.Caption),
		wmi.Str("ClientSiteName", &r.ClientSiteName),
		wmi.Str("CreationClassName", &r.CreationClassName),
		wmi.Str("DcSiteName", &r.DcSiteName),
		wmi.Str("Description", &r.Description),
		wmi.Str("DnsForestName", &r.DnsForestName),
		wmi.Str("DomainControllerAddress", &r.DomainControllerAddress),
		wmi.I32("DomainControllerAddressType", &r.DomainControllerAddressType),
		wmi.Str("DomainControllerName", &r.DomainControllerName),
		wmi.Str("DomainGuid", &r.DomainGuid),
		wmi.Str("DomainName", &r.DomainName),
		wmi.Bool("DSDirectoryServiceFlag", &r.DSDirectoryServiceFlag),
		wmi.Bool("DSDnsControllerFlag", &r.DSDnsControllerFlag),
		wmi.Bool("DSDnsDomainFlag", &r.DSDnsDomainFlag),
		wmi.Bool("DSDnsForestFlag", &r.DSDnsForestFlag),
		wmi.Bool("DSGlobalCatalogFlag", &r.DSGlobalCatalogFlag),
		wmi.Bool("DSKerberosDistributionCenterFlag", &r.DSKerberosDistributionCenterFlag),
		wmi.Bool("DSPrimaryDomainControllerFlag", &r.DSPrimaryDomainControllerFlag),
		wmi.Bool("DSTimeServiceFlag", &r.DSTimeServiceFlag),
		wmi.Bool("DSWritableFlag", &r.DSWritableFlag),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.Str("Name", &r.Name),
		wmi.Str("NameFormat", &r.NameFormat),
		wmi.Str("PrimaryOwnerContact", &r.PrimaryOwnerContact),
		wmi.Str("PrimaryOwnerName", &r.PrimaryOwnerName),
		wmi.StrSlice("Roles", &r.Roles),
		wmi.Str("Status", &r.Status),
	)
}

// PingStatus mirrors the Win32_PingStatus class. The class only
// answers queries scoped to a target address, so it has no snapshot
// container; use wmi.Query with a session of your own instead.
type PingStatus struct {
	Address                        *string   `json:"Address,omitempty" yaml:"Address,omitempty"`
	BufferSize                     *uint32   `json:"BufferSize,omitempty" yaml:"BufferSize,omitempty"`
	NoFragmentation                *bool     `json:"NoFragmentation,omitempty" yaml:"NoFragmentation,omitempty"`
	PrimaryAddressResolutionStatus *uint32   `json:"PrimaryAddressResolutionStatus,omitempty" yaml:"PrimaryAddressResolutionStatus,omitempty"`
	ProtocolAddress                *string   `json:"ProtocolAddress,omitempty" yaml:"ProtocolAddress,omitempty"`
	ProtocolAddressResolved        *string   `json:"ProtocolAddressResolved,omitempty" yaml:"ProtocolAddressResolved,omitempty"`
	RecordRoute                    *uint32   `json:"RecordRoute,omitempty" yaml:"RecordRoute,omitempty"`
	ReplyInconsistency             *bool     `json:"ReplyInconsistency,omitempty" yaml:"ReplyInconsistency,omitempty"`
	ReplySize                      *int32    `json:"ReplySize,omitempty" yaml:"ReplySize,omitempty"`
	ResolveAddressNames            *bool     `json:"ResolveAddressNames,omitempty" yaml:"ResolveAddressNames,omitempty"`
	ResponseTime                   *uint32   `json:"ResponseTime,omitempty" yaml:"ResponseTime,omitempty"`
	ResponseTimeToLive             *uint32   `json:"ResponseTimeToLive,omitempty" yaml:"ResponseTimeToLive,omitempty"`
	RouteRecord                    *[]string `json:"RouteRecord,omitempty" yaml:"RouteRecord,omitempty"`
	RouteRecordResolved            *[]string `json:"RouteRecordResolved,omitempty" yaml:"RouteRecordResolved,omitempty"`
	SourceRoute                    *string   `json:"SourceRoute,omitempty" yaml:"SourceRoute,omitempty"`
	SourceRouteType                *uint32   `json:"SourceRouteType,omitempty" yaml:"SourceRouteType,omitempty"`
	StatusCode                     *uint32   `json:"StatusCode,omitempty" yaml:"StatusCode,omitempty"`
	Timeout                        *uint32   `json:"Timeout,omitempty" yaml:"Timeout,omitempty"`
	TimeStampRecord                *[]string `json:"TimeStampRecord,omitempty" yaml:"TimeStampRecord,omitempty"`
	TimeStampRecordAddress         *[]string `json:"TimeStampRecordAddress,omitempty" yaml:"TimeStampRecordAddress,omitempty"`
	TimeStampRecordAddressResolved *[]string `json:"TimeStampRecordAddressResolved,omitempty" yaml:"TimeStampRecordAddressResolved,omitempty"`
	TimestampRoute                 *uint32   `json:"TimestampRoute,omitempty" yaml:"TimestampRoute,omitempty"`
	TimeToLive                     *uint32   `json:"TimeToLive,omitempty" yaml:"TimeToLive,omitempty"`
	TypeofService                  *uint32   `json:"TypeofService,omitempty" yaml:"TypeofService,omitempty"`
}

func (*PingStatus) Class() string { return "Win32_PingStatus" }

func (r *PingStatus) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.Str("Address", &r.Address),
		wmi.U32("BufferSize", &r.BufferSize),
		wmi.Bool("NoFragmentation", &r.NoFragmentation),
		wmi.U32("PrimaryAddressResolutionStatus", &r.PrimaryAddressResolutionStatus),
		wmi.Str("ProtocolAddress", &r.ProtocolAddress),
		wmi.Str("ProtocolAddressResolved", &r.ProtocolAddressResolved),
		wmi.U32("RecordRoute", &r.RecordRoute),
		wmi.Bool("ReplyInconsistency", &r.ReplyInconsistency),
		wmi.I32("ReplySize", &r.ReplySize),
		wmi.Bool("ResolveAddressNames", &r.ResolveAddressNames),
		wmi.U32("ResponseTime", &r.ResponseTime),
		wmi.U32("ResponseTimeToLive", &r.ResponseTimeToLive),
		wmi.StrSlice("RouteRecord", &r.RouteRecord),
		wmi.StrSlice("RouteRecordResolved", &r.RouteRecordResolved),
		wmi.Str("SourceRoute", &r.SourceRoute),
		wmi.U32("SourceRouteType", &r.SourceRouteType),
		wmi.U32("StatusCode", &r.StatusCode),
		wmi.U32("Timeout", &r.Timeout),
		wmi.StrSlice("TimeStampRecord", &r.TimeStampRecord),
		wmi.StrSlice("TimeStampRecordAddress", &r.TimeStampRecordAddress),
		wmi.StrSlice("TimeStampRecordAddressResolved", &r.TimeStampRecordAddressResolved),
		wmi.U32("TimestampRoute", &r.TimestampRoute),
		wmi.U32("TimeToLive", &r.TimeToLive),
		wmi.U32("TypeofService", &r.TypeofService),
	)
}

// Snapshot containers for the networking classes.
type (
	IP4RouteTables          = wmi.Snapshot[IP4RouteTable, *IP4RouteTable]
	IP4PersistedRouteTables = wmi.Snapshot[IP4PersistedRouteTable, *IP4PersistedRouteTable]
	NetworkClients          = wmi.Snapshot[NetworkClient, *NetworkClient]
	NetworkConnections      = wmi.Snapshot[NetworkConnection, *NetworkConnection]
	NetworkProtocols        = wmi.Snapshot[NetworkProtocol, *NetworkProtocol]
	NTDomains               = wmi.Snapshot[NTDomain, *NTDomain]
)

func NewIP4RouteTables(opts ...wmi.QueryOption) *IP4RouteTables {
	return wmi.NewSnapshot[IP4RouteTable](opts...)
}

func NewIP4PersistedRouteTables(opts ...wmi.QueryOption) *IP4PersistedRouteTables {
	return wmi.NewSnapshot[IP4PersistedRouteTable](opts...)
}

func NewNetworkClients(opts ...wmi.QueryOption) *NetworkClients {
	return wmi.NewSnapshot[NetworkClient](opts...)
}

func NewNetworkConnections(opts ...wmi.QueryOption) *NetworkConnections {
	return wmi.NewSnapshot[NetworkConnection](opts...)
}

func NewNetworkProtocols(opts ...wmi.QueryOption) *NetworkProtocols {
	return wmi.NewSnapshot[NetworkProtocol](opts...)
}

func NewNTDomains(opts ...wmi.QueryOption) *NTDomains {
	return wmi.NewSnapshot[NTDomain](opts...)
}

// Networking groups the routing and network resource snapshots of the
// operating system.
type Networking struct {
	IP4RouteTables          *IP4RouteTables          `json:"ip4_route_tables" yaml:"ip4_route_tables"`
	IP4PersistedRouteTables *IP4PersistedRouteTables `json:"ip4_persisted_route_tables" yaml:"ip4_persisted_route_tables"`
	NetworkClients          *NetworkClients          `json:"network_clients" yaml:"network_clients"`
	NetworkConnections      *NetworkConnections      `json:"network_connections" yaml:"network_connections"`
	NetworkProtocols        *NetworkProtocols        `json:"network_protocols" yaml:"network_protocols"`
	NTDomains               *NTDomains               `json:"nt_domains" yaml:"nt_domains"`
}

// NewNetworking creates the networking group with empty snapshots.
func NewNetworking(opts ...wmi.QueryOption) *Networking {
	return &Networking{
		IP4RouteTables:          NewIP4RouteTables(opts...),
		IP4PersistedRouteTables: NewIP4PersistedRouteTables(opts...),
		NetworkClients:          NewNetworkClients(opts...),
		NetworkConnections:      NewNetworkConnections(opts...),
		NetworkProtocols:        NewNetworkProtocols(opts...),
		NTDomains:               NewNTDomains(opts...),
	}
}

// Name returns the section name used in reports and CLI filters.
func (n *Networking) Name() string { return "networking" }

// Refreshers lists the group's snapshot containers.
func (n *Networking) Refreshers() []wmi.Refresher {
	return []wmi.Refresher{
		n.IP4RouteTables,
		n.IP4PersistedRouteTables,
		n.NetworkClients,
		n.NetworkConnections,
		n.NetworkProtocols,
		n.NTDomains,
	}
}

// Refresh updates every snapshot in the group, stopping at the first
// failure.
func (n *Networking) Refresh(ctx context.Context, sess wmi.Session) error {
	return wmi.RefreshAll(ctx, sess, n.Refreshers()...)
}
