// Package database derives a SQL Server connection descriptor from resolved
// settings. It only describes the connection; opening one is the hosting
// application's job.
package database
