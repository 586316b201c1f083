// Package server exposes parameter usage search over HTTP and socket.io.
//
// The HTTP action endpoint answers
//
//	GET /admin/usage.html?action=search&projectId=<id>&paramName=<term>
//
// with an XML document, or JSON when format=json is given or the client
// accepts application/json. The socket.io namespace answers `search` events
// with `results` or `search_error`.
package server
