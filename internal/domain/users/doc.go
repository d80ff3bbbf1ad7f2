// Package users defines the user entity managed by the CRUD sub-application.
package users
