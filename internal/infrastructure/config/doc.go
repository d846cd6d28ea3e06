// Package config loads and validates the cloudlight runtime configuration.
//
// Configuration comes from three layers, later layers winning:
//
//  1. Built-in defaults (Default), matching the local test cloud endpoint
//  2. The YAML config file (configs/config.yaml by default)
//  3. CLOUDLIGHT_* environment variables
//
// The positional command-line arguments handled in cmd/cloudlight override
// the cloud session fields on top of all three.
package config
