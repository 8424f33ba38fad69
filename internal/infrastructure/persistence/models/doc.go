// Package models contains GORM database models for the infrastructure layer.
// These models handle database persistence and are separated from the domain
// entities so schema concerns never leak into business rules.
package models
