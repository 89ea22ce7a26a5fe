// Package deps checks that external command-line tools are reachable.
package deps
