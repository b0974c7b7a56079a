// Package internal provides version information and build metadata for the Folio application.
//
// This module centralizes all version-related constants and provides formatted strings
// for consistent display across the application. To update the version, simply change
// the AppVersion constant - all other version strings will be automatically updated.
package internal

// Application metadata constants.
// These constants define the core identity and versioning information for Folio.
//
// TO UPDATE THE VERSION: Change only AppVersion below - all other version-related
// strings throughout the application will be automatically updated.
const (
	// AppName is the official name of the application
	AppName = "Folio"

	// AppVersion follows semantic versioning (major.minor.patch)
	// ⬅️ CHANGE VERSION HERE ONLY - this updates everywhere automatically
	AppVersion = "1.2.0"

	// AppAuthor contains author information with site reference
	AppAuthor = "Iris Navarro - https://irisnavarro.dev"

	// AppDesc is the tagline/description used in UI and documentation
	AppDesc = "A Portfolio That Lives In Your Terminal"
)

// GetVersionString returns just the version number for programmatic use.
// Example: "1.2.0"
func GetVersionString() string {
	return AppVersion
}

// GetFullVersionString returns the application name with version for display.
// Example: "Folio v1.2.0"
func GetFullVersionString() string {
	return AppName + " v" + AppVersion
}

// GetAppTitle returns the complete application title including description.
// Used for window titles and the splash screen.
// Example: "Folio v1.2.0 - A Portfolio That Lives In Your Terminal"
func GetAppTitle() string {
	return AppName + " v" + AppVersion + " - " + AppDesc
}

// GetSubtitle returns a compact version and author string for UI footers.
// Example: "v1.2.0 by Iris Navarro - https://irisnavarro.dev"
func GetSubtitle() string {
	return "v" + AppVersion + " by " + AppAuthor
}
