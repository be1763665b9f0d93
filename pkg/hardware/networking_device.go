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

// NetworkAdapter mirrors the Win32_NetworkAdapter class: a network
// interface controller.
type NetworkAdapter struct {
	AdapterType                 *string    `json:"AdapterType,omitempty" yaml:"AdapterType,omitempty"`
	AdapterTypeID               *uint16    `json:"AdapterTypeID,omitempty" yaml:"AdapterTypeID,omitempty"`
	AutoSense                   *bool      `json:"AutoSense,omitempty" yaml:"AutoSense,omitempty"`
	Availability                *uint16    `json:"Availability,omitempty" yaml:"Availability,omitempty"`
	Caption                     *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	ConfigManagerErrorCode      *uint32    `json:"ConfigManagerErrorCode,omitempty" yaml:"ConfigManagerErrorCode,omitempty"`
	ConfigManagerUserConfig     *bool      `json:"ConfigManagerUserConfig,omitempty" yaml:"ConfigManagerUserConfig,omitempty"`
	CreationClassName           *string    `json:"CreationClassName,omitempty" yaml:"CreationClassName,omitempty"`
	Description                 *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	DeviceID                    *string    `json:"DeviceID,omitempty" yaml:"DeviceID,omitempty"`
	ErrorCleared                *bool      `json:"ErrorCleared,omitempty" yaml:"ErrorCleared,omitempty"`
	ErrorDescription            *string    `json:"ErrorDescription,omitempty" yaml:"ErrorDescription,omitempty"`
	GUID                        *string    `json:"GUID,omitempty" yaml:"GUID,omitempty"`
	Index                       *uint32    `json:"Index,omitempty" yaml:"Index,omitempty"`
	InstallDate                 *time.Time `json:"InstallDate,omitempty" yaml:"InstallDate,omitempty"`
	Installed                   *bool      `json:"Installed,omitempty" yaml:"Installed,omitempty"`
	InterfaceIndex              *uint32    `json:"InterfaceIndex,omitempty" yaml:"InterfaceIndex,omitempty"`
	LastErrorCode               *uint32    `json:"LastErrorCode,omitempty" yaml:"LastErrorCode,omitempty"`
	MACAddress                  *string    `json:"MACAddress,omitempty" yaml:"MACAddress,omitempty"`
	Manufacturer                *string    `json:"Manufacturer,omitempty" yaml:"Manufacturer,omitempty"`
	MaxNumberControlled         *uint32    `json:"MaxNumberControlled,omitempty" yaml:"MaxNumberControlled,omitempty"`
	MaxSpeed                    *uint64    `json:"MaxSpeed,omitempty" yaml:"MaxSpeed,omitempty"`
	Name                        *string    `json:"Name,omitempty" yaml:"Name,omitempty"`
	NetConnectionID             *string    `json:"NetConnectionID,omitempty" yaml:"NetConnectionID,omitempty"`
	NetConnectionStatus         *uint16    `json:"NetConnectionStatus,omitempty" yaml:"NetConnectionStatus,omitempty"`
	NetEnabled                  *bool      `json:"NetEnabled,omitempty" yaml:"NetEnabled,omitempty"`
	NetworkAddresses            *[]string  `json:"NetworkAddresses,omitempty" yaml:"NetworkAddresses,omitempty"`
	PermanentAddress            *string    `json:"PermanentAddress,omitempty" yaml:"PermanentAddress,omitempty"`
	PhysicalAdapter             *bool      `json:"PhysicalAdapter,omitempty" yaml:"PhysicalAdapter,omitempty"`
	PNPDeviceID                 *string    `json:"PNPDeviceID,omitempty" yaml:"PNPDeviceID,omitempty"`
	PowerManagementCapabilities *[]uint16  `json:"PowerManagementCapabilities,omitempty" yaml:"PowerManagementCapabilities,omitempty"`
	PowerManagementSupported    *bool      `json:"PowerManagementSupported,omitempty" yaml:"PowerManagementSupported,omitempty"`
	ProductName                 *string    `json:"ProductName,omitempty" yaml:"ProductName,omitempty"`
	ServiceName                 *string    `json:"ServiceName,omitempty" yaml:"ServiceName,omitempty"`
	Speed                       *uint64    `json:"Speed,omitempty" yaml:"Speed,omitempty"`
	Status                      *string    `json:"Status,omitempty" yaml:"Status,omitempty"`
	StatusInfo                  *uint16    `json:"StatusInfo,omitempty" yaml:"StatusInfo,omitempty"`
	SystemCreationClassName     *string    `json:"SystemCreationClassName,omitempty" yaml:"SystemCreationClassName,omitempty"`
	SystemName                  *string    `json:"SystemName,omitempty" yaml:"SystemName,omitempty"`
	TimeOfLastReset             *time.Time `json:"TimeOfLastReset,omitempty" yaml:"TimeOfLastReset,omitempty"`
}

func (*NetworkAdapter) Class() string { return "Win32_NetworkAdapter" }

func (r *NetworkAdapter) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.Str("AdapterType", &r.AdapterType),
		wmi.U16("AdapterTypeID", &r.AdapterTypeID),
		wmi.Bool("AutoSense", &r.AutoSense),
		wmi.U16("Availability", &r.Availability),
		wmi.Str("Caption", &r.Caption),
		wmi.U32("ConfigManagerErrorCode", &r.ConfigManagerErrorCode),
		wmi.Bool("ConfigManagerUserConfig", &r.ConfigManagerUserConfig),
		wmi.Str("CreationClassName", &r.CreationClassName),
		wmi.Str("Description", &r.Description),
		wmi.Str("DeviceID", &r.DeviceID),
		wmi.Bool("ErrorCleared", &r.ErrorCleared),
		wmi.Str("ErrorDescription", &r.ErrorDescription),
		wmi.Str("GUID", &r.GUID),
		wmi.U32("Index", &r.Index),
		wmi.Time("InstallDate", &r.InstallDate),
		wmi.Bool("Installed", &r.Installed),
		wmi.U32("InterfaceIndex", &r.InterfaceIndex),
		wmi.U32("LastErrorCode", &r.LastErrorCode),
		wmi.Str("MACAddress", &r.MACAddress),
		wmi.Str("Manufacturer", &r.Manufacturer),
		wmi.U32("MaxNumberControlled", &r.MaxNumberControlled),
		wmi.U64("MaxSpeed", &r.MaxSpeed),
		wmi.Str("Name", &r.Name),
		wmi.Str("NetConnectionID", &r.NetConnectionID),
		wmi.U16("NetConnectionStatus", &r.NetConnectionStatus),
		wmi.Bool("NetEnabled", &r.NetEnabled),
		wmi.StrSlice("NetworkAddresses", &r.NetworkAddresses),
		wmi.Str("PermanentAddress", &r.PermanentAddress),
		wmi.Bool("PhysicalAdapter", &r.PhysicalAdapter),
		wmi.Str("PNPDeviceID", &r.PNPDeviceID),
		wmi.U16Slice("PowerManagementCapabilities", &r.PowerManagementCapabilities),
		wmi.Bool("PowerManagementSupported", &r.PowerManagementSupported),
		wmi.Str("ProductName", &r.ProductName),
		wmi.Str("ServiceName", &r.ServiceName),
		wmi.U64("Speed", &r.Speed),
		wmi.Str("Status", &r.Status),
		wmi.U16("StatusInfo", &r.StatusInfo),
		wmi.Str("SystemCreationClassName", &r.SystemCreationClassName),
		wmi.Str("SystemName", &r.SystemName),
		wmi.Time("TimeOfLastReset", &r.TimeOfLastReset),
	)
}

// NetworkAdapterConfiguration mirrors the Win32_NetworkAdapterConfiguration
// class: the TCP/IP configuration bound to an adapter.
type NetworkAdapterConfiguration struct {
	ArpAlwaysSourceRoute         *bool      `json:"ArpAlwaysSourceRoute,omitempty" yaml:"ArpAlwaysSourceRoute,omitempty"`
	ArpUseEtherSNAP              *bool      `json:"ArpUseEtherSNAP,omitempty" yaml:"ArpUseEtherSNAP,omitempty"`
	Caption                      *string    `json:"Caption,omitempty" yaml:"Caption,omitempty"`
	DatabasePath                 *string    `json:"DatabasePath,omitempty" yaml:"DatabasePath,omitempty"`
	DeadGWDetectEnabled          *bool      `json:"DeadGWDetectEnabled,omitempty" yaml:"DeadGWDetectEnabled,omitempty"`
	DefaultIPGateway             *[]string  `json:"DefaultIPGateway,omitempty" yaml:"DefaultIPGateway,omitempty"`
	DefaultTOS                   *uint8     `json:"DefaultTOS,omitempty" yaml:"DefaultTOS,omitempty"`
	DefaultTTL                   *uint8     `json:"DefaultTTL,omitempty" yaml:"DefaultTTL,omitempty"`
	Description                  *string    `json:"Description,omitempty" yaml:"Description,omitempty"`
	DHCPEnabled                  *bool      `json:"DHCPEnabled,omitempty" yaml:"DHCPEnabled,omitempty"`
	DHCPLeaseExpires             *time.Time `json:"DHCPLeaseExpires,omitempty" yaml:"DHCPLeaseExpires,omitempty"`
	DHCPLeaseObtained            *time.Time `json:"DHCPLeaseObtained,omitempty" yaml:"DHCPLeaseObtained,omitempty"`
	DHCPServer                   *string    `json:"DHCPServer,omitempty" yaml:"DHCPServer,omitempty"`
	DNSDomain                    *string    `json:"DNSDomain,omitempty" yaml:"DNSDomain,omitempty"`
	DNSDomainSuffixSearchOrder   *[]string  `json:"DNSDomainSuffixSearchOrder,omitempty" yaml:"DNSDomainSuffixSearchOrder,omitempty"`
	DNSEnabledForWINSResolution  *bool      `json:"DNSEnabledForWINSResolution,omitempty" yaml:"DNSEnabledForWINSResolution,omitempty"`
	DNSHostName                  *string    `json:"DNSHostName,omitempty" yaml:"DNSHostName,omitempty"`
	DNSServerSearchOrder         *[]string  `json:"DNSServerSearchOrder,omitempty" yaml:"DNSServerSearchOrder,omitempty"`
	DomainDNSRegistrationEnabled *bool      `json:"DomainDNSRegistrationEnabled,omitempty" yaml:"DomainDNSRegistrationEnabled,omitempty"`
	ForwardBufferMemory          *uint32    `json:"ForwardBufferMemory,omitempty" yaml:"ForwardBufferMemory,omitempty"`
	FullDNSRegistrationEnabled   *bool      `json:"FullDNSRegistrationEnabled,omitempty" yaml:"FullDNSRegistrationEnabled,omitempty"`
	GatewayCostMetric            *[]uint16  `json:"GatewayCostMetric,omitempty" yaml:"GatewayCostMetric,omitempty"`
	IGMPLevel                    *uint8     `json:"IGMPLevel,omitempty" yaml:"IGMPLevel,omitempty"`
	Index                        *uint32    `json:"Index,omitempty" yaml:"Index,omitempty"`
	InterfaceIndex               *uint32    `json:"InterfaceIndex,omitempty" yaml:"InterfaceIndex,omitempty"`
	IPAddress                    *[]string  `json:"IPAddress,omitempty" yaml:"IPAddress,omitempty"`
	IPConnectionMetric           *uint32    `json:"IPConnectionMetric,omitempty" yaml:"IPConnectionMetric,omitempty"`
	IPEnabled                    *bool      `json:"IPEnabled,omitempty" yaml:"IPEnabled,omitempty"`
	IPFilterSecurityEnabled      *bool      `json:"IPFilterSecurityEnabled,omitempty" yaml:"IPFilterSecurityEnabled,omitempty"`
	IPPortSecurityEnabled        *bool      `json:"IPPortSecurityEnabled,omitempty" yaml:"IPPortSecurityEnabled,omitempty"`
	IPSecPermitIPProtocols       *[]string  `json:"IPSecPermitIPProtocols,omitempty" yaml:"IPSecPermitIPProtocols,omitempty"`
	IPSecPermitTCPPorts          *[]string  `json:"IPSecPermitTCPPorts,omitempty" yaml:"IPSecPermitTCPPorts,omitempty"`
	IPSecPermitUDPPorts          *[]string  `json:"IPSecPermitUDPPorts,omitempty" yaml:"IPSecPermitUDPPorts,omitempty"`
	IPSubnet                     *[]string  `json:"IPSubnet,omitempty" yaml:"IPSubnet,omitempty"`
	IPUseZeroBroadcast           *bool      `json:"IPUseZeroBroadcast,omitempty" yaml:"IPUseZeroBroadcast,omitempty"`
	KeepAliveInterval            *uint32    `json:"KeepAliveInterval,omitempty" yaml:"KeepAliveInterval,omitempty"`
	KeepAliveTime                *uint32    `json:"KeepAliveTime,omitempty" yaml:"KeepAliveTime,omitempty"`
	MACAddress                   *string    `json:"MACAddress,omitempty" yaml:"MACAddress,omitempty"`
	MTU                          *uint32    `json:"MTU,omitempty" yaml:"MTU,omitempty"`
	NumForwardPackets            *uint32    `json:"NumForwardPackets,omitempty" yaml:"NumForwardPackets,omitempty"`
	PMTUBHDetectEnabled          *bool      `json:"PMTUBHDetectEnabled,omitempty" yaml:"PMTUBHDetectEnabled,omitempty"`
	PMTUDiscoveryEnabled         *bool      `json:"PMTUDiscoveryEnabled,omitempty" yaml:"PMTUDiscoveryEnabled,omitempty"`
	ServiceName                  *string    `json:"ServiceName,omitempty" yaml:"ServiceName,omitempty"`
	SettingID                    *string    `json:"SettingID,omitempty" yaml:"SettingID,omitempty"`
	TcpipNetbiosOptions          *uint32    `json:"TcpipNetbiosOptions,omitempty" yaml:"TcpipNetbiosOptions,omitempty"`
	TcpMaxConnectRetransmissions *uint32    `json:"TcpMaxConnectRetransmissions,omitempty" yaml:"TcpMaxConnectRetransmissions,omitempty"`
	TcpMaxDataRetransmissions    *uint32    `json:"TcpMaxDataRetransmissions,omitempty" yaml:"TcpMaxDataRetransmissions,omitempty"`
	TcpNumConnections            *uint32    `json:"TcpNumConnections,omitempty" yaml:"TcpNumConnections,omitempty"`
	TcpUseRFC1122UrgentPointer   *bool      `json:"TcpUseRFC1122UrgentPointer,omitempty" yaml:"TcpUseRFC1122UrgentPointer,omitempty"`
	TcpWindowSize                *uint16    `json:"TcpWindowSize,omitempty" yaml:"TcpWindowSize,omitempty"`
	WINSEnableLMHostsLookup      *bool      `json:"WINSEnableLMHostsLookup,omitempty" yaml:"WINSEnableLMHostsLookup,omitempty"`
	WINSHostLookupFile           *string    `json:"WINSHostLookupFile,omitempty" yaml:"WINSHostLookupFile,omitempty"`
	WINSPrimaryServer            *string    `json:"WINSPrimaryServer,omitempty" yaml:"WINSPrimaryServer,omitempty"`
	WINSScopeID                  *string    `json:"WINSScopeID,omitempty" yaml:"WINSScopeID,omitempty"`
	WINSSecondaryServer          *string    `json:"WINSSecondaryServer,omitempty" yaml:"WINSSecondaryServer,omitempty"`
}

func (*NetworkAdapterConfiguration) Class() string { return "Win32_NetworkAdapterConfiguration" }

func (r *NetworkAdapterConfiguration) DecodeRow(row wmi.Row) error {
	return wmi.DecodeFields(row,
		wmi.Bool("ArpAlwaysSourceRoute", &r.ArpAlwaysSourceRoute),
		wmi.Bool("ArpUseEtherSNAP", &r.ArpUseEtherSNAP),
		wmi.Str("Caption", &r.Caption),
		wmi.Str("DatabasePath", &r.DatabasePath),
		wmi.Bool("DeadGWDetectEnabled", &r.DeadGWDetectEnabled),
		wmi.StrSlice("DefaultIPGateway", &r.DefaultIPGateway),
		wmi.U8("DefaultTOS", &r.DefaultTOS),
		wmi.U8("DefaultTTL", &r.DefaultTTL),
		wmi.Str("Description", &r.Description),
		wmi.Bool("DHCPEnabled", &r.DHCPEnabled),
		wmi.Time("DHCPLeaseExpires", &r.DHCPLeaseExpires),
		wmi.Time("DHCPLeaseObtained", &r.DHCPLeaseObtained),
		wmi.Str("DHCPServer", &r.DHCPServer),
		wmi.Str("DNSDomain", &r.DNSDomain),
		wmi.StrSlice("DNSDomainSuffixSearchOrder", &r.DNSDomainSuffixSearchOrder),
		wmi.Bool("DNSEnabledForWINSResolution", &r.DNSEnabledForWINSResolution),
		wmi.Str("DNSHostName", &r.DNSHostName),
		wmi.StrSlice("DNSServerSearchOrder", &r.DNSServerSearchOrder),
		wmi.Bool("DomainDNSRegistrationEnabled", &r.DomainDNSRegistrationEnabled),
		wmi.U32("ForwardBufferMemory", &r.ForwardBufferMemory),
		wmi.Bool("FullDNSRegistrationEnabled", &r.FullDNSRegistrationEnabled),
		wmi.U16Slice("GatewayCostMetric", &r.GatewayCostMetric),
		wmi.U8("IGMPLevel", &r.IGMPLevel),
		wmi.U32("Index", &r.Index),
		wmi.U32("InterfaceIndex", &r.InterfaceIndex),
		wmi.StrSlice("IPAddress", &r.IPAddress),
		wmi.U32("IPConnectionMetric", &r.IPConnectionMetric),
		wmi.Bool("IPEnabled", &r.IPEnabled),
		wmi.Bool("IPFilterSecurityEnabled", &r.IPFilterSecurityEnabled),
		wmi.Bool("IPPortSecurityEnabled", &r.IPPortSecurityEnabled),
		wmi.StrSlice("IPSecPermitIPProtocols", &r.IPSecPermitIPProtocols),
		wmi.StrSlice("IPSecPermitTCPPorts", &r.IPSecPermitTCPPorts),
		wmi.StrSlice("IPSecPermitUDPPorts", &r.IPSecPermitUDPPorts),
		wmi.StrSlice("IPSubnet", &r.IPSubnet),
		wmi.Bool("IPUseZeroBroadcast", &r.IPUseZeroBroadcast),
		wmi.U32("KeepAliveInterval", &r.KeepAliveInterval),
		wmi.U32("KeepAliveTime", &r.KeepAliveTime),
		wmi.Str("MACAddress", &r.MACAddress),
		wmi.U32("MTU", &r.MTU),
		wmi.U32("NumForwardPackets", &r.NumForwardPackets),
		wmi.Bool("PMTUBHDetectEnabled", &r.PMTUBHDetectEnabled),
		wmi.Bool("PMTUDiscoveryEnabled", &r.PMTUDiscoveryEnabled),
		wmi.Str("ServiceName", &r.ServiceName),
		wmi.Str("SettingID", &r.SettingID),
		wmi.U32("TcpipNetbiosOptions", &r.TcpipNetbiosOptions),
		wmi.U32("TcpMaxConnectRetransmissions", &r.TcpMaxConnectRetransmissions),
		wmi.U32("TcpMaxDataRetransmissions", &r.TcpMaxDataRetransmissions),
		wmi.U32("TcpNumConnections", &r.TcpNumConnections),
		wmi.Bool("TcpUseRFC1122UrgentPointer", &r.TcpUseRFC1122UrgentPointer),
		wmi.U16("TcpWindowSize", &r.TcpWindowSize),
		wmi.Bool("WINSEnableLMHostsLookup", &r.WINSEnableLMHostsLookup),
		wmi.Str("WINSHostLookupFile", &r.WINSHostLookupFile),
		wmi.Str("WINSPrimaryServer", &r.WINSPrimaryServer),
		wmi.Str("WINSScopeID", &r.WINSScopeID),
		wmi.Str("WINSSecondaryServer", &r.WINSSecondaryServer),
	)
}

// Snapshot containers for the networking device classes.
type (
	NetworkAdapters              = wmi.Snapshot[NetworkAdapter, *NetworkAdapter]
	NetworkAdapterConfigurations = wmi.Snapshot[NetworkAdapterConfiguration, *NetworkAdapterConfiguration]
)

func NewNetworkAdapters(opts ...wmi.QueryOption) *NetworkAdapters {
	return wmi.NewSnapshot[NetworkAdapter](opts...)
}

func NewNetworkAdapterConfigurations(opts ...wmi.QueryOption) *NetworkAdapterConfigurations {
	return wmi.NewSnapshot[NetworkAdapterConfiguration](opts...)
}

// NetworkingDevices groups the network interface controller and its
// configuration snapshots.
type NetworkingDevices struct {
	Adapters       *NetworkAdapters              `json:"adapters" yaml:"adapters"`
	Configurations *NetworkAdapterConfigurations `json:"configurations" yaml:"configurations"`
}

func NewNetworkingDevices(opts ...wmi.QueryOption) *NetworkingDevices {
	return &NetworkingDevices{
		Adapters:       NewNetworkAdapters(opts...),
		Configurations: NewNetworkAdapterConfigurations(opts...),
	}
}

func (d *NetworkingDevices) Name() string { return "networking_devices" }

func (d *NetworkingDevices) Refreshers() []wmi.Refresher {
	return []wmi.Refresher{d.Adapters, d.Configurations}
}

func (d *NetworkingDevices) Refresh(ctx context.Context, sess wmi.Session) error {
	return wmi.RefreshAll(ctx, sess, d.Refreshers()...)
}
