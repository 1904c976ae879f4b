// Package main is the entry point for the lua-localizer CLI.
package main

import "github.com/ProfeJavix/lua-localizer/cmd"

func main() {
	cmd.Execute()
}
