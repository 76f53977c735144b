// SPDX-License-Identifier: MIT

// Package jsonl reads and writes JSON-lines records for the surus command
// and cuts them into detector windows.
//
// Objects keep their key order. JSON integers become int64 (Long), other
// numbers float64 (Double); a field holding both is promoted to Double.
// Nested objects and arrays are carried through as json.RawMessage.
package jsonl
