/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types with classification
// codes for the outer surfaces of winsnap (CLI, serialization, OCI
// publishing). The low-level wmi package keeps its own sentinel
// errors; these are mapped onto ErrorCodes at the boundary.
package errors
