// Package internal holds the version constant and small helpers shared
// across the application packages.
package internal

// Version is the application version.
const Version = "1.0.0"
