// Package uniuri generates random strings from crypto/rand without modulo bias.
// The upload handler uses it for the numeric part of stored file names.
package uniuri
