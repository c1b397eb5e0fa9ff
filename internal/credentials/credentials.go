// Package credentials implements the credential prompt session: a caller
// asks for credentials for a named target, the session consults the
// process-scoped instance cache and the OS credential store, and only falls
// back to an interactive prompt when neither has usable data. After the
// caller validates the entered credentials it confirms or rejects
// persistence.
package credentials

// Credential is a username/password pair for one target. The password is
// held in memory only and is never logged.
type Credential struct {
	Username string
	Password string
}

// Options control how a request consults the cache tiers.
type Options struct {
	// UseInstanceCache consults the process-scoped cache first. A hit
	// short-circuits everything else, including ForceUIOnSavedCredentials.
	UseInstanceCache bool

	// ShowSaveOption consults the OS credential store and shows the save
	// checkbox on the prompt.
	ShowSaveOption bool

	// ForceUIOnSavedCredentials always shows the prompt even when a stored
	// record was found, with the stored values pre-populated.
	ForceUIOnSavedCredentials bool
}

// Result is the outcome of a successful request.
type Result struct {
	Credential Credential

	// FromCache reports the credential came from a cache tier without
	// prompting.
	FromCache bool
}
