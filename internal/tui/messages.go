package tui

// iterationMsg carries one completed action cycle into the view.
type iterationMsg struct {
	assistantText string
	userText      string
}

// sessionDoneMsg signals that the session ended with the given history
// length.
type sessionDoneMsg struct {
	historyLen int
}

// sessionErrMsg signals that the session could not run at all.
type sessionErrMsg struct {
	err error
}
