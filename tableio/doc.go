// SPDX-License-Identifier: MIT

// Package tableio reads citation tables and writes ranking reports.
//
// Input is CSV with a header row followed by one row per entity:
//
//	entityId,noOfPubs,ref_1,…,ref_N
//
// Reports are written as CSV (the default), JSON, YAML or TOML, chosen by
// file extension. WriteFile replaces the target atomically: the report is
// written to a temporary file in the same directory and renamed on success,
// so a failed run never leaves a partial artifact behind.
package tableio
