// Package account provides domain entities for user accounts in the logistics
// system.
//
// The package includes:
//   - User: The aggregate root for an account with identity, role and credential
//   - Role: The closed set of permission roles
//   - Credential: The hashed-password value object; plaintext never enters the domain
//
// Key business rules:
//   - Email is the unique login identity
//   - Roles change only through an explicit administrative operation
//   - Passwords exist only as salted one-way hashes and are never serialized outward
//   - Accounts are deactivated, never hard-deleted
package account
