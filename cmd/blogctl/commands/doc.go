// Package commands implements the blogctl command tree: schema setup plus
// user and board administration on top of the sqlite repositories.
package commands
