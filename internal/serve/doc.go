// Package serve hosts a component registry over HTTP so teams can run
// their own registry endpoint. It serves the manifest, component
// sources, and Prometheus metrics, with a trace span per request.
package serve
