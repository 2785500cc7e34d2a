// Package domainkit shows the shape a domain-specific wrapper over
// graph and dmysssp takes: (a) a constructor mapping domain names to
// vertex indices, (b) a call into the SSSP kernel, (c) name-to-index
// translation for results. It is intentionally thin — a city-map or
// peer-network adapter, in the style of lvlath's runnable examples,
// rather than a second graph implementation. Callers needing a
// specific domain (cities, peers, parts) write their own NamedGraph;
// Build and the NamedGraph interface exist to document the pattern.
package domainkit
