package tui

type configRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initConfigDoneMsg struct {
	dir    string
	status string
	err    error
}
