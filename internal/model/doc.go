package model

// Package model defines the tempo domain used across the app: the Maelzel
// tempo table, the input mode enum, the tempo model itself, and the
// bounded-integer text normalizer. All logic here is pure and UI-free so it
// can be exercised directly in tests.
