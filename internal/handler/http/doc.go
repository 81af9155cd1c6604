// Package http implements the HTTP transport of the relay.
//
// It exposes route wiring, request handlers, and middleware for the node
// API: session issuing, blind node reads, conditional writes, and change
// watching. Cross-cutting concerns such as authentication, request
// tracing, access logging, and response compression are handled in this
// package before requests are delegated to the node repository.
package http
