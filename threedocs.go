// Package threedocs provides a chat assistant for the three.js API
// reference and example gallery. It builds an in-memory catalog of
// documentation entries from the site's manifest files, resolves
// free-text queries against that catalog (exact match first, fuzzy
// subsequence fallback, property drill-down), and renders matches as
// chat-platform payloads with stateful pagination controls.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. goquery/,
// http/, rod/, discord/).
package threedocs
