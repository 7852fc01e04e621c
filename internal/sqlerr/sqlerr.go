// Package sqlerr classifies database driver errors.
//
// It turns Postgres SQLSTATE codes into a small set of categories and maps
// them onto errs.HTTPError values, e.g. a foreign key violation becomes a
// 400 instead of leaking out as a 500.
package sqlerr
