// Package stockdash provides the computation core of a personal
// investment-portfolio dashboard. It turns raw brokerage records (stock
// transactions, option trades, deposits, dividends) into display-ready
// analytics.
//
// The core functionalities include:
//   - Cost-Basis Engine: per-symbol holdings using a running weighted-average
//     cost, and tax-oriented realised gains using chronological (FIFO) lot
//     consumption, bucketed by fiscal year. The two accounting conventions are
//     implemented as fully separate algorithms.
//   - Options Roll-Chain Engine: links independently stored short-option
//     records into roll chains, and computes per-leg and cumulative profit,
//     return and holding time.
//   - Long-Option Decay Analytics: intrinsic/extrinsic value, time-decay rate,
//     leverage and fee drag for long-dated option positions.
//   - Aggregation: fiscal-year buckets, monthly premium buckets, portfolio
//     totals and weights.
//
// All money and share quantities use exact decimal arithmetic; values are only
// rounded at the display boundary. The engine performs no I/O: record-store
// access and price fetching live in the surrounding adapter files and in the
// nocodb subpackage, and feed the engine complete input snapshots.
//
// This package serves as the foundational logic for the `sdash` command-line
// tool.
package stockdash
