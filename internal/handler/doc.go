// Package handler provides the HTTP request handlers for the camp API.
//
// Handlers are grouped by resource. Each handler struct depends on a small
// service interface, registers its own routes on a ServeMux with
// RegisterRoutes, and renders one of the model view types.
//
// # Response Format
//
// Successful responses are the bare view (or a JSON array of views). Errors
// use two shapes:
//
//   - {"error": "Camper not found"} for 404 and 500 responses
//   - {"errors": ["validation errors"]} for every 400 response
//
// MapServiceError is the single place service errors become status codes.
// Field-level validation details are logged at debug level and never
// returned to the client.
//
// # Example Usage
//
//	mux := handler.NewRouter(handler.NewServices(store))
//	http.ListenAndServe(":5555", mux)
package handler
