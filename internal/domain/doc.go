// Package domain models EcoPatrol environmental incident reports and the
// summaries the dashboard derives from them.
//
// # Reports
//
// An incident report is a single logged environmental issue: a river spill, an
// illegal dump, construction noise. Each report carries an integer identifier,
// a free-text title, a lifecycle status, a category drawn from a small fixed
// set, the calendar date it was filed and the WGS-84 coordinates of the site.
// Reports are immutable once constructed; nothing in the service edits them.
//
// # Status
//
// Status is exhaustive and mutually exclusive:
//
//	critical    Критично   needs attention now
//	inProgress  В работе   being handled
//	resolved    Решено     closed out
//
// The wire values are the camel-case identifiers above. Labels are the Russian
// display strings used in the page and in CSV exports.
//
// # Aggregates
//
// Two aggregate series are authored independently of the report collection:
// monthly counts (total and resolved reports per month) and a category
// breakdown in percent. [CountByStatus] is always derived from the live
// collection. [CategoryShares] derives the category breakdown from the live
// collection for deployments that prefer computed values over the authored
// series.
package domain
