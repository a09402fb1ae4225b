//go:build mage

package main

import (
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Site builds the CLI and regenerates output/ from data/.
func Site() error {
	mg.Deps(Build)
	return runCLI("build")
}

// Catalog builds the CLI and reindexes contacts.db from data/.
func Catalog() error {
	mg.Deps(Build)
	return runCLI("catalog", "index")
}

func runCLI(args ...string) error {
	cmd := exec.Command("./"+binDir+"/"+binName, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
