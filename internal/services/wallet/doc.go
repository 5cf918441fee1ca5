// Package wallet manages the signing seed: generation, import into the
// encrypted keystore, and address derivation.
package wallet
