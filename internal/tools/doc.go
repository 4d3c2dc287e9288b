// Package tools implements the self-contained text utilities: slugs, text
// statistics, password generation and base64 conversion, plus the catalog
// that lists them.
package tools
