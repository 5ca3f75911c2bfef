/*
Package observability turns engine lifecycle events into logs and Prometheus metrics.

Both are exposed as domain.LifecycleHooks so they can be combined and passed to the
engine with WithLifecycleHooks. Metrics are written to a node-exporter textfile;
nothing listens on the network.
*/
package observability
