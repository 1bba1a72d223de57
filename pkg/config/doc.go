// Package config loads, validates and writes the global pagedots
// configuration file.
//
// The file lives at $XDG_CONFIG_HOME/pagedots/config.yaml (falling back to
// ~/.config/pagedots/config.yaml) and looks like this:
//
//	apiVersion: pagedots.macropower.dev/v1beta1
//	kind: Configuration
//	indicator:
//	  visibleCount: 5
//	ui:
//	  theme: auto
//
// Files are validated against a JSON schema that is reflected from [Config],
// see [Schema]. A [Watcher] reloads the file whenever it changes on disk.
package config
