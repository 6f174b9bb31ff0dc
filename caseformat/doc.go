// Package caseformat models the six identifier case formats refmt can
// convert between: camelCase, PascalCase, snake_case, SCREAMING_SNAKE_CASE,
// kebab-case, and SCREAMING-KEBAB-CASE.
//
// Each Format exposes three things: a detection pattern matching maximal
// identifier spans with at least two word segments, a splitter decomposing
// a matched identifier into lowercase word segments, and a joiner
// reassembling word segments into the format with an optional literal
// prefix and suffix.
//
// For any format pair and any well-formed multi-word identifier, splitting
// in the source format and joining in the target format round-trips back to
// the same lowercase word sequence. The one documented ambiguity is digits
// at case boundaries: a word that begins with a digit cannot be recovered
// from a camel/Pascal rendering, since digits carry no case.
package caseformat
