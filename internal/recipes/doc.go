// Package recipes provides the client for the recipe HTTP API and an
// in-process catalog with the same surface.
//
// # Endpoints
//
//   - GET /api/suggestions?q=: autocomplete candidates ({id, title, category?})
//   - GET /api/recipes?search=&page=&limit=: one page of the recipe listing
//   - GET /api/favorites/count: favorites badge in the navigation bar
//   - GET /api/session: signed-in user, if any
//
// All requests set Accept: application/json and User-Agent: pantry/0.1, use
// the caller's context and a 5 second client timeout. Non-2xx responses are
// returned as *StatusError; transport and decode failures are wrapped with
// fmt.Errorf.
//
// The client imposes no ranking on suggestions and does not retry; the
// search controller decides what to do with failures.
//
// # Catalog
//
// Catalog implements Service over a fixed slice of recipes. Suggestions are
// fuzzy matched against titles with github.com/lithammer/fuzzysearch and the
// listing uses a case-insensitive substring filter. Latency can be injected
// to exercise out-of-order responses.
package recipes
