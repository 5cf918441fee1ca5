// Package commands defines the amsign CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen      Generate a fresh signing seed
//   - init        Import a seed into the encrypted keystore
//   - address     Print the signer address for the configured seed
//   - call        Build, sign and broadcast a contract call
//   - verify      Check a signature offline
//   - balance     Query account balances
//   - stats       Query chain statistics
//   - tx          Look up a transaction by hash
//   - validators  List the current validator set
//
// # Implementation
//
// The root command resolves configuration (flags over environment over an
// optional config file) and builds the dependency graph (keystore, ledger
// client, services) before any subcommand runs. The private key material
// stays inside one invocation: decoded, used, wiped.
package commands
