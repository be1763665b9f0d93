/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

// Package operatingsystem declares record schemas and snapshot
// containers for the operating system facing WMI classes: routing
// tables and network resources, processes and threads, and installed
// services. Each group exposes a Name, its Refreshers, and a Refresh
// that updates all of its snapshots on one session.
package operatingsystem
