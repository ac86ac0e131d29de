// Package constants holds shared domain constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// JoinCodeAlphabet is the character set for group join codes. Ambiguous
// characters (0/O, 1/I) are excluded so codes survive being read aloud.
const JoinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// JoinCodeLength is the length of generated group join codes.
const JoinCodeLength = 6
