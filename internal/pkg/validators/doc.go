// Package validators holds reusable input checks built on go-playground/validator.
// Checks return result values instead of errors so callers can branch on the reason.
package validators
