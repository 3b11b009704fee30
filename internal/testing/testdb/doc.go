// Package testdb provides isolated SurrealDB databases for tests.
//
// Each call to New connects with a fresh namespace, applies the hang and
// user schemas and registers cleanup:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    // use tdb.DB
//	}
//
// Tests are skipped when no database is reachable. Connection settings come
// from TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER and TEST_DB_PASSWORD, which
// default to a local root/root instance:
//
//	surreal start memory --user root --pass root
package testdb
