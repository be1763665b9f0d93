/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the winsnap command line interface.
package cli
