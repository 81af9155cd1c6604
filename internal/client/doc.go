// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the terminal UI, the vault session and the
// background sync worker into a single process lifecycle.
package client
