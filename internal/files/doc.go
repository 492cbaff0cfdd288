// Package files provides file discovery utilities: locating input
// workbooks and generated CSV reports, and picking the most recent one.
// All operations are relative to a base path to maintain portability.
package files
