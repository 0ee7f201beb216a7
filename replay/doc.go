// Package replay drives a fixed character sequence through realize.Realize
// against a snapshot-loaded State and writes the result, for regression
// testing against known-good traces (§6).
package replay
