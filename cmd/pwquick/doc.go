// Package main hosts the pwquick CLI entrypoint and command graph.
//
// Every command acquires a fresh snapshot of the PipeWire graph (from pw-dump
// or a saved dump passed with --dump-file), renders or resolves against it,
// and hands mutations to wpctl. Configuration, logging and the graph source
// are resolved once per invocation in commandContext so subcommands only deal
// with presentation.
package main
