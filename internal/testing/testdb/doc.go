// Package testdb provides real databases for store-backed tests.
//
// NewSQLite gives each test its own migrated SQLite file, so tests can run in
// parallel without sharing rows:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.NewSQLite(t)
//	    svc := service.NewCamperService(service.CamperServiceConfig{Store: tdb.Store})
//	}
//
// NewPostgres (build tag integration) starts a Postgres container with
// testcontainers-go. NewSurreal uses the SurrealDB named by TEST_SURREAL_URI
// and skips the test when it is unset.
package testdb
