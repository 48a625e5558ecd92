// Package services contains stateless domain services that operate on more
// than one aggregate or value object without touching storage.
package services
