// Package fixtures provides test data factories for store-backed tests.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions, and fails the test on error.
//
// Usage:
//
//	f := fixtures.New(tdb.Store)
//	camper := f.CreateCamper(t, fixtures.WithAge(9))
//	activity := f.CreateActivity(t)
//	f.CreateSignup(t, camper, activity, 10)
package fixtures
