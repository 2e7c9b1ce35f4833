package builtins

import (
	"database/sql"
	"sync"

	_ "modernc.org/sqlite"
)

// memoDB is an in-memory sqlite database used purely as a memoization
// cache for `memo_fib`. Grounded on the pack's preference for a pure-Go
// sqlite driver (modernc.org/sqlite) over a cgo one, so the primitive
// stays buildable without a C toolchain.
var (
	memoDB   *sql.DB
	memoOnce sync.Once
	memoErr  error
)

func memoDBConn() (*sql.DB, error) {
	memoOnce.Do(func() {
		memoDB, memoErr = sql.Open("sqlite", "file:memo_fib?mode=memory&cache=shared")
		if memoErr != nil {
			return
		}
		_, memoErr = memoDB.Exec(`CREATE TABLE IF NOT EXISTS fib (n INTEGER PRIMARY KEY, value INTEGER NOT NULL)`)
	})
	return memoDB, memoErr
}

// memoFibPrimitive backs `memo_fib(n)`: computes the n-th Fibonacci
// number, caching every value it computes along the way in a sqlite
// table so repeated calls with overlapping ranges reuse prior work
// across the whole process lifetime.
var memoFibPrimitive = Primitive{
	Name:  "memo_fib",
	Arity: 1,
	Call: func(args []int64) (int64, error) {
		n := args[0]
		if n < 0 {
			return 0, errFault("memo_fib: n must be non-negative, got %d", n)
		}
		db, err := memoDBConn()
		if err != nil {
			return 0, errFault("memo_fib: open cache: %v", err)
		}
		return fibMemo(db, n)
	},
}

func fibMemo(db *sql.DB, n int64) (int64, error) {
	if cached, ok, err := lookupFib(db, n); err != nil {
		return 0, err
	} else if ok {
		return cached, nil
	}

	var result int64
	switch n {
	case 0:
		result = 0
	case 1:
		result = 1
	default:
		a, err := fibMemo(db, n-1)
		if err != nil {
			return 0, err
		}
		b, err := fibMemo(db, n-2)
		if err != nil {
			return 0, err
		}
		result = a + b
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO fib (n, value) VALUES (?, ?)`, n, result); err != nil {
		return 0, errFault("memo_fib: cache write: %v", err)
	}
	return result, nil
}

func lookupFib(db *sql.DB, n int64) (int64, bool, error) {
	var value int64
	err := db.QueryRow(`SELECT value FROM fib WHERE n = ?`, n).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errFault("memo_fib: cache read: %v", err)
	}
	return value, true, nil
}
