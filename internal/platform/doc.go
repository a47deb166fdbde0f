package platform

// Package platform contains OS integration: the per-user log directory, logger
// construction, and revealing files in the system file manager.
