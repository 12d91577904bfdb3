/*
Package observability provides lifecycle hooks for monitoring engine runs.

Metrics counts questions and runs with Prometheus collectors on a private
registry, and can dump them in the node_exporter textfile format for
short-lived CLI processes. LoggingHooks writes the same events to a
structured logger.
*/
package observability
