/*
Package observability provides tools for monitoring Towers sessions.

Metrics binds Prometheus collectors to a session through domain.LifecycleHooks,
and NewRouter exposes them over HTTP together with a health probe.
*/
package observability
