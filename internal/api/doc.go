package api

// Package api implements the REST client for the catalog backend: filtered
// entity listings, CRUD, multipart photo uploads, and global search. Failures
// surface as typed errors so callers can tell a missing record from a broken
// backend.
