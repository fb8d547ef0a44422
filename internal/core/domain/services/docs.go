// Package services contains stateless domain services. The access policy
// lives here: a pure decision over caller identity, caller role and resource
// owner that every read and write path consults the same way.
package services
