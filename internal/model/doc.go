package model

// Package model defines domain data structures used across the app: supported
// languages, the picker selection, translation requests and their outcomes,
// and the status enum driving the translate control.
