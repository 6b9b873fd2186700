// Package toolserver exposes a shared tool registry over HTTP and provides
// the matching client used by agents. All specialist agents call the same
// backend for catalog and order tools; when it is down, the client executes
// an identical local registry so tool behavior never diverges.
package toolserver
