package model

// Package model defines domain data structures used across the app: catalog
// entities, list filters, and phase enums. Entities map one-to-one onto the
// backend's JSON wire format and are designed for direct binding in the UI.
