// Package session houses concrete implementations of core.SessionStore. The
// interface itself (and the Session struct) live in the core package to
// centralize domain contracts. Keeping only implementations here prevents
// higher level packages (agents, A2A servers) from depending on concrete
// storage.
//
// Additional backends (Redis, Postgres, ...) can be added in sub-packages
// without changing any calling code; only the wiring layer decides which
// implementation to instantiate.
package session
