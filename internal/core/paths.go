package core

import (
	"os"
	"path/filepath"
)

type Paths struct {
	DataDir     string
	LogFile     string
	AnswersFile string
}

var defaultPaths *Paths

func ensureDefaultPaths() {
	if defaultPaths == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}

		defaultPaths = &Paths{
			DataDir:     filepath.Join(homeDir, ".local", "share", "chooser"),
			LogFile:     filepath.Join(homeDir, ".local", "share", "chooser", "chooser.zst"),
			AnswersFile: filepath.Join(homeDir, ".local", "share", "chooser", "answers.db"),
		}

		err = os.MkdirAll(defaultPaths.DataDir, 0755)
		if err != nil {
			panic(err)
		}
	}
}

func DataDir() string {
	ensureDefaultPaths()
	return defaultPaths.DataDir
}

func LogFile() string {
	ensureDefaultPaths()
	return defaultPaths.LogFile
}

// AnswersFile is the sqlite database holding recorded prompt answers.
func AnswersFile() string {
	ensureDefaultPaths()
	return defaultPaths.AnswersFile
}

// SetPathsForTesting overrides the resolved paths. Tests use this to
// point the data directory at a temp dir.
func SetPathsForTesting(p *Paths) {
	defaultPaths = p
}
