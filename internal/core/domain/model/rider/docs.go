// Package rider holds the read-only view of a delivery rider that the ordering
// core needs to authorize order claims.
package rider
