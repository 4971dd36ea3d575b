// Package envname derives canonical environment-variable names from
// hierarchical namespaces.
//
// "Acme::Widgets::V2" with the default prefix derives
// "FLOSS_FUNDING_ACME__WIDGETS__V2". Results are memoized per input; the
// cache must be reset explicitly after a prefix change or stale names are
// served (documented contract, not a bug).
package envname
