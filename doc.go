// Package inventory provides the data model, stock-ledger rules and backup
// semantics of a single-user, offline-first inventory tracker. It is designed
// to be local-first and auditable: all state lives in one embedded database
// file that the user fully owns.
//
// The core functionalities include:
//   - Entity Management: Recording products and categories, with merge-style
//     edits and cascade rules (deleting a product removes its transactions,
//     deleting a category unlinks it from products).
//   - Stock Ledger: Posting immutable IN/OUT movement transactions that
//     maintain each product's current stock incrementally, inside an
//     all-or-nothing write boundary.
//   - Derived Views: Low-stock alerting, total stock valuation, transaction
//     history filtering, and periodic movement summaries.
//   - Backup: Versioned full export of all entity tables to JSON, and an
//     atomic destructive restore from such a snapshot.
//
// This package serves as the foundational logic for the `inv` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package inventory
