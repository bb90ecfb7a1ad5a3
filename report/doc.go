// SPDX-License-Identifier: MIT

// Package report assembles ranking results into one table.
//
// Assemble joins entity identifiers with one or more named score columns
// by index and sorts the rows descending by a designated column. Rows are
// never filtered, deduplicated or renamed; ties keep input order.
package report
