// Package main provides the entry point for the GoFolio portfolio backend.
// It initializes and runs a web server using the Fiber framework that exposes
// public blog and repository read endpoints, a contact form, and a token-gated
// admin REST API for content management. The application uses gorm for data
// persistence against a MySQL, PostgreSQL, or SQLite backend selected at
// startup by configuration.
package main
