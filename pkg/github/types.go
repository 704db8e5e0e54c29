package github

const rawContentURL = "https://raw.githubusercontent.com"

// FileRef addresses one file at a given ref.
type FileRef struct {
	Owner  string
	Repo   string
	Branch string
	Path   string
}
