// Package testsupport holds helpers shared by package tests: isolated XDG
// directories, stub tool binaries, and configs that cannot reach a live server.
package testsupport
