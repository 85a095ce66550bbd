// Package repository implements the SQL data access layer for the camp API.
//
// Each repository struct handles the queries for one table and runs against a
// database.Executor, either the pool or a transaction. Store binds all three
// to one transaction per unit of work:
//
//	store := repository.NewStore(db)
//	err := store.Atomic(ctx, func(ctx context.Context, uow service.UnitOfWork) error {
//	    return uow.Activities().Delete(ctx, id) // signups go with it
//	})
//
// # Query Patterns
//
//   - Queries use ? placeholders; the executor rebinds them for Postgres
//   - Inserts read the generated key with RETURNING id
//   - GetByID returns nil, nil when the row is absent
//   - Derived collections (a camper's activities, an activity's campers) are
//     explicit joins through signups
//
// The SurrealDB implementation lives in the surreal subpackage.
package repository
