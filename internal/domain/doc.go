// Package domain contains the core entities and error values for driptweet.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (Twitter API, file system, logging)
// and contains only plain data and invariants.
//
// # Entities
//
//   - [Entry]: one candidate message in the sequence store
//   - [LastPublished]: the newest post on the account, as reported by the gateway
package domain
