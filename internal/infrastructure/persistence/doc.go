// Package persistence provides the database connection and GORM-based
// repository implementations of the CRUD sub-application, including the
// schema migration run at startup or through the migrate command.
package persistence
