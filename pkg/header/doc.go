/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

// Package header provides the common header type for winsnap resources.
//
// The Header carries Kubernetes-style resource identification (Kind,
// APIVersion) plus metadata such as a unique id, a UTC capture
// timestamp, and the tool version. It is embedded inline into
// serialized reports so every artifact is self-describing.
//
// # Usage
//
// Initialize a header for a snapshot report:
//
//	var h header.Header
//	h.Init(header.KindSnapshot, "winsnap/v1", "v1.0.0")
//	h.Metadata["source-host"] = hostname
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "Snapshot",
//	  "apiVersion": "winsnap/v1",
//	  "metadata": {
//	    "id": "8e3a1c2e-...",
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
package header
