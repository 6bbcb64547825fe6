// Package workshop implements the business-management core of a small
// manufacturing/trading operation: inventory stock levels, worker attendance
// and wages, raw-material purchases and payment status, daily expenses, and
// customer invoicing with GST computation.
//
// All state is session-scoped and in-memory; a new Session starts empty and
// nothing survives it. The core functionalities are:
//   - Entity stores: ordered in-memory collections of committed records,
//     one per entity type, each exclusively owned by its screen.
//   - Derived fields: pure methods recomputing dependent values (line
//     amounts, bill totals, remaining balances, low-stock flags) from their
//     inputs on every read, so they can never drift.
//   - Filtering: pure predicate evaluation producing filtered views without
//     mutating the collections.
//   - Record lifecycle: create/edit sessions over draft value copies, with
//     validation before commit and unconditional cancel.
//   - Bill drafting: an ordered line-item editor guarding the
//     at-least-one-item invariant.
//
// Exact arithmetic is carried by decimal-backed Money, Quantity and Percent
// values. This package serves as the foundational logic for the `bms`
// command-line tool and the renderer and export collaborators.
package workshop
