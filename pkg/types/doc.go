// Package types defines the entity structs, enumerated field values, patch
// structs, report structs, and standard errors shared by the salesdesk
// storage and service layers. The package holds no business logic and does
// no I/O.
package types
