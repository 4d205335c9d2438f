// Package model defines the core community data types.
package model

// Resident represents one community member in the directory.
// IDs are unique within a roster and never change after creation.
// Empty names and bios are legal; the directory tolerates sparse records.
type Resident struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	New       bool   `json:"new"`
	Available bool   `json:"available"`
}
