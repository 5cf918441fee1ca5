// Package store persists the signing seed on disk, encrypted under a
// passphrase. The clear seed only ever exists in memory.
package store
