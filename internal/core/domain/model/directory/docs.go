// Package directory holds the reference aggregates of the network: hubs and
// routes. Shipments point at them through immutable business keys, so the
// directory is consulted (never copied) when a shipment is assigned.
package directory
