// Package api implements the HTTP surface of the server: request/response
// models, handlers over the interaction service, and the mapping from
// sentinel errors to status codes. Handlers stay thin; all domain rules live
// in the service and social packages.
package api
