package domain

// Session is a point-in-time snapshot of the authenticated-session state.
// User is present only while Token is present; a token may exist alone after
// rehydration from the persisted slot, before the profile has been fetched.
type Session struct {
	Token   string
	User    *UserProfile
	Loading bool
	Error   string
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
