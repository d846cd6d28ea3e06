// Package logging provides structured logging for the cloudlight runtime.
//
// It wraps log/slog so every component logs through the same handler with
// consistent default fields (service, version) and a level filter driven
// by configuration:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// Never log auth codes, tokens or certificate material.
package logging
