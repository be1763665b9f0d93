/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

// Package oci publishes serialized snapshots to OCI-compliant
// registries (Docker Hub, GHCR, ECR, local registries) using the ORAS
// library.
//
// Output targets use the oci:// URI scheme:
//
//	ref, err := oci.ParseOutputTarget("oci://ghcr.io/org/snapshots:v1.0.0")
//	if err != nil { ... }
//
//	result, err := oci.Push(ctx, oci.PushOptions{
//	    SourceDir:  dir,
//	    Registry:   ref.Registry,
//	    Repository: ref.Repository,
//	    Tag:        ref.Tag,
//	})
//
// Authentication uses the local Docker credential store.
package oci
