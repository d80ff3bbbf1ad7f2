// Package models contains GORM database models. They are kept apart from the
// domain entities so schema tags never leak into the domain layer.
package models
