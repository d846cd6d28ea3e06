package main

import (
	"fmt"
	"io"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/config"
)

// applyArgs overlays the positional command-line arguments onto the loaded
// configuration. Order is fixed: device name, auth code, cloud endpoint,
// subject id, access-provider name. Every argument is optional; an absent
// argument leaves the configured value in place.
func applyArgs(cfg *config.Config, args []string) {
	if len(args) >= 1 {
		cfg.Device.Name = args[0]
	}
	if len(args) >= 2 {
		cfg.Cloud.AuthCode = args[1]
	}
	if len(args) >= 3 {
		cfg.Cloud.Endpoint = args[2]
	}
	if len(args) >= 4 {
		cfg.Cloud.SubjectID = args[3]
	}
	if len(args) >= 5 {
		cfg.Cloud.Provider = args[4]
	}
}

// printUsage describes the positional arguments. Shown when the binary is
// started without any; startup proceeds on defaults regardless.
func printUsage(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  cloudlight <device-name> <auth-code> <endpoint> <subject-id> <provider>\n\n")
	fmt.Fprintf(w, "All arguments are optional and positional.\n")
	fmt.Fprintf(w, "Defaults: device-name=%q auth-code=%q endpoint=%q subject-id=%q provider=%q\n",
		cfg.Device.Name,
		cfg.Cloud.AuthCode,
		cfg.Cloud.Endpoint,
		cfg.Cloud.SubjectID,
		cfg.Cloud.Provider,
	)
}
