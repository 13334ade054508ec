// Package store is the durable key/value layer under every repository.
//
// # Layers
//
//   - Store: raw bytes by key (Get/Set/Delete/List/Clear). SQLiteStore
//     implements it over dbx.DBTX, so the same code runs on *sql.DB and
//     inside a *sql.Tx.
//   - Adapter: namespaces keys under a fixed prefix and JSON-encodes values.
//     Repositories and access control only talk to the Adapter.
//
// # Failures
//
// Every engine or codec failure is returned wrapped in common.ErrorStorage.
// Writes of different keys are independent: there is no transaction across
// keys unless the caller opens one with dbx.WithTx and builds an Adapter on
// the transaction.
//
// # Typical usage
//
//	db, _ := store.Open(ctx, "fleet.db")
//	a := store.NewAdapter(store.NewSQLiteStore(db), common.DefaultKeyPrefix)
//	var ships []models.Ship
//	found, err := a.Get(ctx, store.KeyShips, &ships)
package store
