// Package balance is the entry point of chembalance: it chains the
// equation splitter, formula parser, matrix builder, null-space solver and
// formatter into one pure function, Balance.
//
// Every failure is returned as a *Error carrying the Stage that failed
// (split, parse or solve) and the offending input. The stage classes match
// with errors.Is:
//
//	res, err := balance.Balance("H2 + O2 --> H2O")
//	switch {
//	case errors.Is(err, balance.ErrSplit):  // separator missing, empty side
//	case errors.Is(err, balance.ErrParse):  // malformed compound
//	case errors.Is(err, balance.ErrSolve):  // no unique positive solution
//	}
//
// Results are verified before they are returned: A·x = 0 is recomputed with
// checked integer arithmetic (Verify), so a Result is never partial or
// approximate.
//
// All balances many independent equations concurrently with a bounded
// worker pool; NewReport turns its outcomes into an encodable Report.
package balance
