// Package demo provides the twelve concrete operations of the original
// SOFI++ demonstration program, a table-driven integrity function, and the
// string-keyed domain payload those operations act on. It is the variant
// half of a split between the parametric engine (internal/sofi) and a
// concrete operation set; nothing here is required by the core engine, and
// a different SOFI system could supply its own operation table instead.
package demo
