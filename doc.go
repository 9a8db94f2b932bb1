// Package portfolio tracks a single-user investment portfolio built from a
// chronological log of buy and sell transactions. It is designed to be
// local-first and fully recomputed: every query folds the complete
// transaction log, so the ledger file remains the single source of truth.
//
// The core is a pair of pure functions:
//   - NewSnapshot derives the current holdings (with weighted-average cost)
//     and a cash-flow-aware summary from the transaction log and a map of
//     current prices.
//   - ReconstructHistory replays the same cash-flow rules day by day to
//     rebuild an equity/return curve from the first transaction to today.
//
// Both are total over structurally valid input: unknown symbols fall back
// to the transaction's own price, over-sells clamp the position at zero,
// and an empty portfolio reports a 0% return instead of dividing by zero.
// Input validation is the job of the collecting layer (the sip CLI), not
// of the valuation engine.
//
// Around the core, the package provides the Ledger (ordered transaction
// log with a bounded undo stack), JSONL persistence, a daily price cache,
// and an HTTP quote service. AI-assisted price fetching and portfolio
// analysis live in the agent subpackage; report rendering in renderer.
package portfolio
