package config

import (
	"os/exec"
	"strings"
	"time"
)

// UnknownCommit is recorded when the git commit cannot be determined.
const UnknownCommit = "unknown"

// gitCommit is swapped out in tests.
var gitCommit = func() (string, error) {
	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// CollectMetadata stamps the current UTC time and the git commit of the working directory.
func CollectMetadata(now time.Time) Metadata {
	commit, err := gitCommit()
	if err != nil || commit == "" {
		commit = UnknownCommit
	}
	return Metadata{
		Timestamp: now.UTC().Format("2006-01-02 15:04:05"),
		GitCommit: commit,
	}
}
