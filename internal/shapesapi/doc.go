// Package shapesapi builds authenticated requests for the shapes API and
// interprets its responses.
//
// Endpoints are GET {base}/{version}/hello and GET {base}/{version}/shapes.
// Every request asks for application/json and carries one header per
// credential. Responses are interpreted in two layers: the HTTP status first
// (non-2xx bodies are never decoded), then the status embedded in the JSON
// body, which the upstream API uses for application-level errors.
package shapesapi
