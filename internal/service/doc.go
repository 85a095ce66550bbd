// Package service implements the business logic layer for the camp API.
//
// Services sit between the HTTP handlers and the repositories. They build
// validated entities, run every operation inside one Store.Atomic unit of
// work and translate storage failures into service errors.
//
// # Service Pattern
//
//   - Constructor function (NewXxxService) accepts a config struct holding the Store
//   - Each method opens exactly one unit of work and either commits all of it or nothing
//   - Errors are sentinel errors or *ValidationError, matched with errors.Is / errors.As
//
// # Store Interfaces
//
// The package defines the Store, UnitOfWork and per-entity repository
// interfaces it needs. internal/repository implements them over database/sql
// and internal/repository/surreal over SurrealDB; tests use function-field
// mocks.
//
// # Error Handling
//
//	ErrCamperNotFound, ErrActivityNotFound  - path id does not resolve
//	*ValidationError (ErrValidation)        - a field failed its validator
//	ErrSignupReference                      - signup names a missing camper or activity
//
// # Example Usage
//
//	campers := service.NewCamperService(service.CamperServiceConfig{Store: store})
//	camper, err := campers.CreateCamper(ctx, &model.CreateCamperRequest{Name: &name, Age: &age})
package service
