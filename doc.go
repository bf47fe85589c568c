// Package stockroom provides the types and functions for managing a product
// catalog: the inventory of a small shop, kept local-first in a single
// human-readable file.
//
// The core functionalities include:
//   - Product Records: three product categories (Electronics, Grocery,
//     Clothing) sharing a common contract for selling, restocking,
//     valuation and description, with category-specific rules such as the
//     grocery expiry guard.
//   - Catalog Management: an insertion-ordered, id-keyed ledger of records
//     with add/remove/sell/restock/search/sweep/valuation operations, each
//     of which either completes or fails with a typed error, leaving the
//     catalog in its prior consistent state.
//   - Data Persistence: encoding and decoding the full catalog snapshot to
//     and from a human-readable, version-controllable JSONL file, with an
//     exact round-trip guarantee.
//   - Feed Repricing: bulk unit-price updates from arbitrary supplier
//     price feeds, addressed by JSONPath.
//
// Dates (expiry, valuation) are always passed in explicitly, so the core
// never reads the wall clock and stays deterministic under test.
//
// This package serves as the foundational logic for the `stk` command-line
// tool.
package stockroom
