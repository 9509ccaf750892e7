package version

// Version is the semantic version of the hypothesis CLI.
const Version = "0.4.0"
