// Package utils holds small helpers shared across layers: great-circle
// distance, LIKE pattern escaping, and fiber response envelopes.
package utils
