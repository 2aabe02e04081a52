package platform

// Package platform contains OS integration helpers:
// opening external links in the system browser and image file guards
// for the photo picker.
