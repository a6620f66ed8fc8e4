// Gazetteer is a small HTTP service which answers one question: where
// is this IPv4 address? It validates the address, asks a single
// upstream geolocation provider and returns the answer in a stable
// schema, with every failure mapped onto a fixed error taxonomy.
//
// Tool itself is organized into 3 logical parts:
//
// Gazetteer
//
// gazetteer is the core package: the address validator, the provider
// contract, the lookup service and the error taxonomy. It knows
// nothing about the concrete upstream or the HTTP routing.
//
// Providers
//
// This package has upstream adapter implementations. Today that is
// ip-api.com; a new backend is another implementation of
// gazetteer.Provider and one more case in the composition root.
//
// Api
//
// The HTTP surface: routing, the client-IP endpoint and the boundary
// which turns typed failures into status codes and JSON envelopes.
//
// A main package itself wires everything together and provides the
// CLI. Resulting binary starts an http server and you can use it in
// your infrastructure as is.
package main
