// Package contact defines the contact form submission, its validation rules and
// the user-facing messages produced by them.
package contact
