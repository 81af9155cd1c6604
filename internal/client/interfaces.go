// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the minimal contract for a runnable client application:
// Run starts it and blocks until exit.
type Client interface {
	Run() error
}
