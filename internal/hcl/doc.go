// Package hcl provides the concrete HCL implementation of config.Loader.
// It parses a single settings file and evaluates its expressions against an
// `env` object built from the process environment, so a file may say
//
//	input = "${env.HOME}/aoc/day08.txt"
package hcl
