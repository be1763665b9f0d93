/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

// Package hardware declares record schemas and snapshot containers
// for the hardware facing WMI classes: network interface controllers
// with their TCP/IP configurations, and processors.
package hardware
