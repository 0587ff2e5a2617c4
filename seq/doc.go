// Package seq provides ready-made core.Sequence adapters over the two most
// common element representations: raw bytes and decoded runes. Wrap your
// own slice-backed data with ByteSeq or RuneSeq; anything else implementing
// core.Sequence works equally well with every package in this module.
package seq
