// Package social implements the in-memory relationship and messaging core:
// the relationship graph between accounts, per-account mailboxes, and
// communities with per-member broadcast queues.
//
// The types in this package hold no locks of their own. All mutation flows
// through the interaction service, which serializes each orchestration call
// under a single process-wide lock so that multi-step transitions (such as
// mutual friendship acceptance) are never partially visible.
package social
